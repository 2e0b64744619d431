package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/toponyms/internal/register"
	"github.com/JonMunkholm/toponyms/internal/translit"
)

func newTranslitCmd(_ *app) *cobra.Command {
	var standard string

	cmd := &cobra.Command{
		Use:   "translit [text...]",
		Short: "Romanize names given as arguments or one per line on stdin",
		Long: `Prints one line per name. With --standard the line holds that romanization;
otherwise the System A, System B and KMU forms separated by tabs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var std *translit.Standard
			if standard != "" {
				s, err := translit.ParseStandard(standard)
				if err != nil {
					return err
				}
				std = &s
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			emit := func(text string) {
				text = register.NormalizeName(text)
				if std != nil {
					fmt.Fprintln(w, translit.Default().Transliterate(*std, text))
					return
				}
				n := translit.Default().All(text)
				fmt.Fprintf(w, "%s\t%s\t%s\n", n.A, n.B, n.K)
			}

			if len(args) > 0 {
				for _, arg := range args {
					emit(arg)
				}
				return w.Flush()
			}

			if err := eachLine(cmd.InOrStdin(), emit); err != nil {
				return err
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&standard, "standard", "s", "", "a, b or k (default: all three)")
	return cmd
}

func eachLine(r io.Reader, fn func(string)) error {
	in, _ := register.WrapInput(r)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			fn(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}
