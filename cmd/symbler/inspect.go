package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/gogpu/symbler"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newDisasmCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "disasm [program...]",
		Short: "List the commands a program executes",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return fmt.Errorf("reading program: %w", err)
			}
			sym := symbler.Parse(input, parseOptions(v)...)
			out := cmd.OutOrStdout()
			for i, c := range sym.History() {
				fmt.Fprintf(out, "%4d  %s\n", i, c)
			}
			fmt.Fprintf(out, "; %d vertices, %d keys, %d edges\n",
				len(sym.Vertices()), sym.KeyCount(), len(sym.Edges()))
			return nil
		},
	}
}

func newLinesCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lines [program...]",
		Short: "Print the normalized drawing instructions",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return fmt.Errorf("reading program: %w", err)
			}
			sym := symbler.Parse(input, parseOptions(v)...)
			lines := symbler.Normalize(sym.Lines(), v.GetFloat64("lines.side"), v.GetFloat64("lines.margin"))
			out := cmd.OutOrStdout()
			for _, l := range lines {
				fmt.Fprintf(out, "%.3f,%.3f %.3f,%.3f %s %s\n",
					l.A.X, l.A.Y, l.B.X, l.B.Y, l.Color, keyFlags(l))
			}
			return nil
		},
	}
	cmd.Flags().Float64("side", symbler.DefaultSide, "Square side")
	cmd.Flags().Float64("margin", symbler.DefaultMargin, "Empty border around the symbol")
	bindFlags(v, "lines", cmd)
	return cmd
}

// keyFlags renders the endpoint keyness as two characters, K or '-'.
func keyFlags(l symbler.Line) string {
	flag := func(b bool) byte {
		if b {
			return 'K'
		}
		return '-'
	}
	return string([]byte{flag(l.KeyA), flag(l.KeyB)})
}

func newAsmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "asm [command...]",
		Short: "Assemble mnemonic commands into a program",
		Long:  "Assemble one command per argument, or one per stdin line when no arguments are given (e.g. \"LIN 4 1\"). Lines starting with ';' are ignored.",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := args
			if len(lines) == 0 {
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					lines = append(lines, sc.Text())
				}
				if err := sc.Err(); err != nil {
					return fmt.Errorf("reading commands: %w", err)
				}
			}

			var cmds []symbler.Command
			for i, l := range lines {
				l = strings.TrimSpace(l)
				if l == "" || strings.HasPrefix(l, ";") {
					continue
				}
				c, err := symbler.ParseCommand(l)
				if err != nil {
					return fmt.Errorf("line %d: %w", i+1, err)
				}
				cmds = append(cmds, c)
			}

			prog, err := symbler.Assemble(cmds)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), prog)
			return nil
		},
	}
}
