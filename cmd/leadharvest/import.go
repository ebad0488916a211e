package main

import (
	"fmt"

	"github.com/pmilosz/leadharvest"
	"github.com/pmilosz/leadharvest/csv"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	leads, err := csv.ReadLeads(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadharvest.ErrorMessage(err))
		return err
	}

	created, duplicates := 0, 0
	for _, lead := range leads {
		if c.Keyword != "" {
			lead.Keyword = c.Keyword
		}

		err := deps.Leads.CreateLead(deps.Ctx, lead)
		switch leadharvest.ErrorCode(err) {
		case "":
			created++
		case leadharvest.ECONFLICT:
			duplicates++
		default:
			fmt.Fprintf(deps.Stderr, "error: %s\n", leadharvest.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Imported %d leads (%d already known)\n", created, duplicates)
	return nil
}
