package snake

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Required marks a flag that PromptFlags will not accept an empty answer for.
const Required = "snake-required"

// MarkRequired flags name as needing a non-empty answer when prompted.
func MarkRequired(cmd *cobra.Command, name string) {
	_ = cmd.Flags().SetAnnotation(name, Required, []string{"true"})
}

// PromptFlags asks for each named string flag the user did not set on the
// command line and stores the answers on the flags.
func PromptFlags(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			return fmt.Errorf("snake: unknown flag %q", name)
		}
		if f.Changed || f.Value.Type() != "string" {
			continue
		}
		answer, err := PromptFlagString(f, cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if err := f.Value.Set(answer); err != nil {
			return err
		}
		f.Changed = true
	}
	return nil
}

func asFlags(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("--%s, -%s", f.Name, f.Shorthand)
	}
	return fmt.Sprintf("--%s", f.Name)
}

func isRequired(f *pflag.Flag) bool {
	v, ok := f.Annotations[Required]
	return ok && len(v) > 0 && v[0] == "true"
}

// PromptFlagString prompts for a single string flag value.
func PromptFlagString(f *pflag.Flag, in io.Reader, out io.Writer) (string, error) {
	required := isRequired(f)
	validate := func(input string) error {
		if required && strings.TrimSpace(input) == "" && f.DefValue == "" {
			return errors.New("required")
		}
		return nil
	}

	label := f.Usage
	if label == "" {
		label = asFlags(f)
	}

	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}

	prompt := promptui.Prompt{
		Label:     label,
		Default:   f.DefValue,
		Templates: templates,
		Validate:  validate,
		Stdin:     readCloser(in),
		Stdout:    writeCloser(out),
	}

	result, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt %s: %w", asFlags(f), err)
	}
	return strings.TrimSpace(result), nil
}
