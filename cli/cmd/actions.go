package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/indexer-tools/actionq/cli/core/config"
	"github.com/indexer-tools/actionq/cli/utils"
	"github.com/indexer-tools/actionq/pkg/actions"
	"github.com/indexer-tools/actionq/pkg/client/actionservice"
	"github.com/indexer-tools/actionq/pkg/logging"
	"github.com/indexer-tools/actionq/pkg/types"
)

func ActionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "actions",
		Usage: "Manage the allocation action queue",
		Subcommands: []*cli.Command{
			queueCommand(),
			getCommand(),
			approveCommand(),
			executeCommand(),
			cancelCommand(),
			deleteCommand(),
			updateCommand(),
		},
	}
}

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "output",
		Usage: "Output format: table, yaml or json",
	}
}

func queueCommand() *cli.Command {
	return &cli.Command{
		Name:      "queue",
		Usage:     "Queue an allocation action",
		ArgsUsage: "<allocate|unallocate|reallocate> <deployment-id> [values...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "source",
				Usage: "Origin recorded on the queued action",
				Value: "cli",
			},
			&cli.StringFlag{
				Name:  "reason",
				Usage: "Reason recorded on the queued action",
				Value: "manual",
			},
			&cli.IntFlag{
				Name:  "priority",
				Usage: "Execution priority",
			},
			outputFlag(),
		},
		Action: queueAction,
	}
}

func queueAction(c *cli.Context) error {
	if c.NArg() < 2 {
		return cli.Exit("usage: actions queue <type> <deployment-id> [values...]", 1)
	}

	actionType, err := types.ValidateActionType(c.Args().Get(0))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	params := mapPositionalValues(actionType, c.Args().Get(1), c.Args().Slice()[2:])

	input, err := actions.BuildActionInput(
		actionType,
		params,
		c.String("source"),
		c.String("reason"),
		types.ActionStatusQueued,
		c.Int("priority"),
		config.GetProtocolNetwork(),
	)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	client, err := newClient()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer client.Close()

	results, err := client.QueueActions(c.Context, []types.ActionInput{*input})
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return render(c, results)
}

// mapPositionalValues is the single place where the queue subcommand's
// positional values gain meaning. Everything past here works with named
// fields only.
func mapPositionalValues(actionType types.ActionType, target string, values []string) actions.QueueParams {
	params := actions.QueueParams{Target: target}

	get := func(i int) string {
		if i < len(values) {
			return values[i]
		}
		return ""
	}

	switch actionType {
	case types.ActionTypeAllocate:
		params.Amount = get(0)
	case types.ActionTypeUnallocate:
		params.AllocationID = get(0)
		params.POI = get(1)
		params.Force = get(2)
	case types.ActionTypeReallocate:
		params.AllocationID = get(0)
		params.Amount = get(1)
		params.POI = get(2)
		params.Force = get(3)
	}
	return params
}

func getCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Fetch one action by id, or every action matching the filter",
		ArgsUsage: "[all|<id>]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "type", Usage: "Filter by action type"},
			&cli.StringFlag{Name: "status", Usage: "Filter by action status"},
			&cli.StringFlag{Name: "source", Usage: "Filter by source"},
			&cli.StringFlag{Name: "reason", Usage: "Filter by reason"},
			&cli.IntFlag{Name: "first", Usage: "Return at most N actions"},
			&cli.StringFlag{Name: "order-direction", Usage: "asc or desc"},
			outputFlag(),
		},
		Action: getAction,
	}
}

func getAction(c *cli.Context) error {
	client, err := newClient()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer client.Close()

	arg := c.Args().Get(0)
	if arg != "" && arg != "all" {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return cli.Exit(fmt.Sprintf("invalid action id %q", arg), 1)
		}
		result, err := client.FetchAction(c.Context, id)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		return render(c, []types.ActionResult{*result})
	}

	var filter types.ActionFilter
	if arg != "all" {
		filter, err = actions.BuildActionFilter("", c.String("type"), c.String("status"), c.String("source"), c.String("reason"))
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}

	results, err := client.FetchActions(c.Context, filter, &actionservice.FetchOptions{
		First:          c.Int("first"),
		OrderDirection: c.String("order-direction"),
	})
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return render(c, results)
}

func approveCommand() *cli.Command {
	return &cli.Command{
		Name:      "approve",
		Usage:     "Approve queued actions for execution",
		ArgsUsage: "<ids...>",
		Flags:     []cli.Flag{outputFlag()},
		Action: func(c *cli.Context) error {
			return batchAction(c, func(client *actionservice.Client, ids []int64) ([]types.ActionResult, error) {
				return client.ApproveActions(c.Context, ids)
			})
		},
	}
}

func cancelCommand() *cli.Command {
	return &cli.Command{
		Name:      "cancel",
		Usage:     "Cancel actions in the queue",
		ArgsUsage: "<ids...>",
		Flags:     []cli.Flag{outputFlag()},
		Action: func(c *cli.Context) error {
			return batchAction(c, func(client *actionservice.Client, ids []int64) ([]types.ActionResult, error) {
				return client.CancelActions(c.Context, ids)
			})
		},
	}
}

func deleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete actions from the queue",
		ArgsUsage: "<ids...>",
		Flags:     []cli.Flag{outputFlag()},
		Action: func(c *cli.Context) error {
			return batchAction(c, func(client *actionservice.Client, ids []int64) ([]types.ActionResult, error) {
				return client.DeleteActions(c.Context, ids)
			})
		},
	}
}

func batchAction(c *cli.Context, op func(*actionservice.Client, []int64) ([]types.ActionResult, error)) error {
	if c.NArg() == 0 {
		return cli.Exit("at least one action id is required", 1)
	}

	ids := make([]int64, 0, c.NArg())
	for _, arg := range c.Args().Slice() {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return cli.Exit(fmt.Sprintf("invalid action id %q", arg), 1)
		}
		ids = append(ids, id)
	}

	client, err := newClient()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer client.Close()

	results, err := op(client, ids)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return render(c, results)
}

func executeCommand() *cli.Command {
	return &cli.Command{
		Name:  "execute",
		Usage: "Execute every approved action",
		Flags: []cli.Flag{outputFlag()},
		Action: func(c *cli.Context) error {
			client, err := newClient()
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			defer client.Close()

			results, err := client.ExecuteApprovedActions(c.Context)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return render(c, results)
		},
	}
}

func updateCommand() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Bulk-update every action matching the filter",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "filter-id", Usage: "Filter by action id"},
			&cli.StringFlag{Name: "filter-type", Usage: "Filter by action type"},
			&cli.StringFlag{Name: "filter-status", Usage: "Filter by action status"},
			&cli.StringFlag{Name: "filter-source", Usage: "Filter by source"},
			&cli.StringFlag{Name: "filter-reason", Usage: "Filter by reason"},
			&cli.StringFlag{Name: "deployment-id", Usage: "New deployment id"},
			&cli.StringFlag{Name: "allocation-id", Usage: "New allocation id"},
			&cli.StringFlag{Name: "amount", Usage: "New token amount (display units)"},
			&cli.StringFlag{Name: "poi", Usage: "New proof of indexing"},
			&cli.StringFlag{Name: "force", Usage: "New force flag"},
			&cli.StringFlag{Name: "type", Usage: "New action type"},
			&cli.StringFlag{Name: "status", Usage: "New action status"},
			&cli.StringFlag{Name: "reason", Usage: "New reason"},
			outputFlag(),
		},
		Action: updateAction,
	}
}

// updateFlagToField maps CLI flag names onto update-parser field names.
var updateFlagToField = map[string]string{
	"deployment-id": "deploymentID",
	"allocation-id": "allocationID",
	"amount":        "amount",
	"poi":           "poi",
	"force":         "force",
	"type":          "type",
	"status":        "status",
	"reason":        "reason",
}

func updateAction(c *cli.Context) error {
	filter, err := actions.BuildActionFilter(
		c.String("filter-id"),
		c.String("filter-type"),
		c.String("filter-status"),
		c.String("filter-source"),
		c.String("filter-reason"),
	)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	rawUpdate := make(map[string]interface{})
	for flag, field := range updateFlagToField {
		if c.IsSet(flag) {
			rawUpdate[field] = c.String(flag)
		}
	}
	if len(rawUpdate) == 0 {
		return cli.Exit("no update fields provided", 1)
	}

	update, err := actions.ParseActionUpdateInput(rawUpdate)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	client, err := newClient()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer client.Close()

	results, err := client.UpdateActions(c.Context, filter, *update)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return render(c, results)
}

func newClient() (*actionservice.Client, error) {
	logger, err := logging.NewZapLogger(logging.NewDefaultConfig(logging.CliProcess))
	if err != nil {
		return nil, err
	}
	return actionservice.NewClient(logger, config.GetManagementURL())
}

func render(c *cli.Context, results []types.ActionResult) error {
	format := c.String("output")
	if format == "" {
		format = config.GetOutputFormat()
	}
	if err := utils.RenderActions(os.Stdout, format, results); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}
