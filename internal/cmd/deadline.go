package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jimezsa/scholarcli/internal/filter"
	"github.com/jimezsa/scholarcli/internal/i18n"
)

type DeadlineCmd struct {
	Date string `arg:"" help:"Deadline date (YYYY-MM-DD)."`
}

type deadlineResult struct {
	Deadline string `json:"deadline"`
	DaysLeft *int   `json:"days_left"`
	Urgent   bool   `json:"urgent"`
	Expired  bool   `json:"expired"`
}

func (d *DeadlineCmd) Run(ctx *Context) error {
	date := strings.TrimSpace(d.Date)
	result := deadlineResult{Deadline: date}
	days, ok := filter.DaysUntil(&date, ctx.now())
	if ok {
		result.DaysLeft = &days
		result.Urgent = filter.Urgent(days)
		result.Expired = days < 0
	}

	if ctx.JSONOutput {
		return json.NewEncoder(ctx.Out).Encode(result)
	}

	t := ctx.translator()
	switch {
	case !ok:
		ctx.UI.Warnf("%s", t.T(i18n.NoDeadline))
	case result.Expired:
		fmt.Fprintln(ctx.Out, t.T(i18n.Expired))
	case result.Urgent:
		fmt.Fprintln(ctx.Out, ctx.UI.UrgentText(t.T(i18n.DaysLeft, days)))
	default:
		fmt.Fprintln(ctx.Out, t.T(i18n.DaysLeft, days))
	}
	return nil
}
