package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/statekit/npmstate/pkg/declaration"
)

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	var declPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a declaration file",
		Long: `Parse and validate a declaration file without evaluating it.
Structural problems fail the command; lint findings are printed as
warnings and do not affect the exit status.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runValidate(declPath)
		},
	}

	cmd.Flags().StringVarP(&declPath, "file", "f", "", "declaration file to validate")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runValidate(declPath string) error {
	decl, err := declaration.Load(declPath)
	if err != nil {
		return fmt.Errorf("declaration is invalid: %w", err)
	}

	for _, warning := range decl.Lint() {
		fmt.Printf("warning: %s\n", warning)
	}

	fmt.Printf("Declaration is valid: %d installed, %d removed, %d bootstrap\n",
		len(decl.Installed), len(decl.Removed), len(decl.Bootstrap))
	return nil
}
