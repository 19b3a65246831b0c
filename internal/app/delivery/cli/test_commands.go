package cli

import (
	"fmt"
	"pathlab-client/internal/pkg/dto/requests"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newTestsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tests",
		Short: "Browse and manage the test catalog",
	}
	cmd.AddCommand(
		newTestsListCommand(app),
		newTestsGetCommand(app),
		newTestsParametersCommand(app),
		newTestsCreateCommand(app),
		newTestsUpdateCommand(app),
		newTestsDeleteCommand(app),
	)
	return cmd
}

func newTestsListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the test catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			tests, err := app.Tests.ListTests(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(tests))
			for _, test := range tests {
				rows = append(rows, []string{
					formatID(test.ID),
					test.TestName,
					test.SampleType,
					formatAmount(test.Price),
					strconv.Itoa(len(test.Parameters)),
				})
			}
			renderTable(app.Out, []string{"ID", "Name", "Sample", "Price", "Parameters"}, rows)
			return nil
		},
	}
}

func newTestsGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <test-id>",
		Short: "Show one catalog test",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			testID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid test id %q", args[0])
			}
			test, err := app.Tests.FindTestByID(cmd.Context(), testID)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "%s (#%d) — %s, %s sample, %s\n",
				test.TestName, test.ID, test.Description, test.SampleType, formatAmount(test.Price))
			rows := make([][]string, 0, len(test.Parameters))
			for _, parameter := range test.Parameters {
				rows = append(rows, []string{
					formatID(parameter.ID),
					parameter.Name,
					parameter.Unit,
					parameter.RefRangeMale,
					parameter.RefRangeFemale,
					parameter.RefRangeChild,
				})
			}
			renderTable(app.Out, []string{"ID", "Parameter", "Unit", "Male", "Female", "Child"}, rows)
			return nil
		},
	}
}

func newTestsParametersCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "parameters <test-id>",
		Short: "List the parameters of a test",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			testID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid test id %q", args[0])
			}
			parameters, err := app.Tests.ListTestParameters(cmd.Context(), testID)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(parameters))
			for _, parameter := range parameters {
				rows = append(rows, []string{
					formatID(parameter.ID),
					parameter.Name,
					parameter.Unit,
					parameter.RefRangeMale,
					parameter.RefRangeFemale,
					parameter.RefRangeChild,
				})
			}
			renderTable(app.Out, []string{"ID", "Parameter", "Unit", "Male", "Female", "Child"}, rows)
			return nil
		},
	}
}

// parseParameterSpecs turns "Name|Unit|Male|Female|Child" flag values into
// parameter payloads.
func parseParameterSpecs(specs []string) ([]requests.TestParameterPayload, error) {
	payloads := make([]requests.TestParameterPayload, 0, len(specs))
	for _, spec := range specs {
		fields := strings.Split(spec, "|")
		if len(fields) != 5 {
			return nil, fmt.Errorf("invalid parameter spec %q, want Name|Unit|Male|Female|Child", spec)
		}
		payloads = append(payloads, requests.TestParameterPayload{
			Name:           fields[0],
			Unit:           fields[1],
			RefRangeMale:   fields[2],
			RefRangeFemale: fields[3],
			RefRangeChild:  fields[4],
		})
	}
	return payloads, nil
}

func newTestsCreateCommand(app *App) *cobra.Command {
	request := &requests.CreateTestRequest{}
	var parameterSpecs []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a test to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			payloads, err := parseParameterSpecs(parameterSpecs)
			if err != nil {
				return err
			}
			request.Parameters = payloads
			test, err := app.Tests.CreateTest(cmd.Context(), request)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Created test #%d (%s)\n", test.ID, test.TestName)
			return nil
		},
	}
	cmd.Flags().StringVar(&request.TestName, "name", "", "test name")
	cmd.Flags().StringVar(&request.Description, "description", "", "test description")
	cmd.Flags().StringVar(&request.SampleType, "sample-type", "", "sample type (blood, urine, saliva, tissue, other)")
	cmd.Flags().Float64Var(&request.Price, "price", 0, "test price")
	cmd.Flags().StringArrayVar(&parameterSpecs, "parameter", nil, "parameter as Name|Unit|Male|Female|Child (repeatable)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("sample-type")
	cmd.MarkFlagRequired("price")
	return cmd
}

func newTestsUpdateCommand(app *App) *cobra.Command {
	request := &requests.UpdateTestRequest{}
	var parameterSpecs []string

	cmd := &cobra.Command{
		Use:   "update <test-id>",
		Short: "Update a catalog test",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			testID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid test id %q", args[0])
			}
			if len(parameterSpecs) > 0 {
				payloads, err := parseParameterSpecs(parameterSpecs)
				if err != nil {
					return err
				}
				request.Parameters = payloads
			}
			test, err := app.Tests.UpdateTest(cmd.Context(), testID, request)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Updated test #%d (%s)\n", test.ID, test.TestName)
			return nil
		},
	}
	cmd.Flags().StringVar(&request.TestName, "name", "", "test name")
	cmd.Flags().StringVar(&request.Description, "description", "", "test description")
	cmd.Flags().StringVar(&request.SampleType, "sample-type", "", "sample type (blood, urine, saliva, tissue, other)")
	cmd.Flags().Float64Var(&request.Price, "price", 0, "test price")
	cmd.Flags().StringArrayVar(&parameterSpecs, "parameter", nil, "parameter as Name|Unit|Male|Female|Child (repeatable)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("sample-type")
	cmd.MarkFlagRequired("price")
	return cmd
}

func newTestsDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <test-id>",
		Short: "Remove a test from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStaff(); err != nil {
				return err
			}
			testID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid test id %q", args[0])
			}
			if err := app.Tests.DeleteTest(cmd.Context(), testID); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Deleted test #%d\n", testID)
			return nil
		},
	}
}
