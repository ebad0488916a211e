package main

import (
	"fmt"

	"github.com/pmilosz/leadharvest"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := leadharvest.PlaceQuery{
		Keyword:    c.Keyword,
		City:       c.City,
		State:      c.State,
		MaxResults: c.Max,
	}

	businesses, err := deps.Searcher.SearchPlaces(deps.Ctx, query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadharvest.ErrorMessage(err))
		return err
	}

	if len(businesses) == 0 {
		fmt.Fprintln(deps.Stdout, "No businesses found.")
		return nil
	}

	created, duplicates := 0, 0
	for _, business := range businesses {
		lead := &leadharvest.Lead{
			Name:    business.Name,
			Address: business.Address,
			Phone:   business.Phone,
			Website: business.Website,
			PlaceID: business.PlaceID,
			Keyword: c.Keyword,
		}

		err := deps.Leads.CreateLead(deps.Ctx, lead)
		switch leadharvest.ErrorCode(err) {
		case "":
			created++
			fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", lead.ID, lead.Name, lead.Website)
		case leadharvest.ECONFLICT:
			duplicates++
		default:
			fmt.Fprintf(deps.Stderr, "error: %s\n", leadharvest.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Stored %d new leads (%d already known)\n", created, duplicates)
	return nil
}
