package main

import (
	"fmt"
	"strings"

	"github.com/pmilosz/leadharvest"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := leadharvest.LeadFilter{Limit: c.Limit}
	if c.Keyword != "" {
		filter.Keyword = &c.Keyword
	}

	leads, err := deps.Leads.FindLeads(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadharvest.ErrorMessage(err))
		return err
	}

	if len(leads) == 0 {
		fmt.Fprintln(deps.Stdout, "No leads found. Use 'leadharvest search' to collect some.")
		return nil
	}

	for _, lead := range leads {
		status := lead.HarvestStatus
		if status == "" {
			status = "-"
		}
		fmt.Fprintf(deps.Stdout, "%s  %-10s  %s  %s  %s\n",
			lead.ID, status, lead.Name, lead.Website, strings.Join(lead.Emails, ", "))
	}

	return nil
}
