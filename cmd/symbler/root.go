package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/gogpu/symbler"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/unicode/norm"
)

// newRootCmd builds the command tree around a fresh viper instance so that
// tests can run it repeatedly.
func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "symbler",
		Short:         "Draw vector symbols from short strings",
		Long:          "symbler interprets a string as a nibble-stream program that builds a planar graph, and renders, lists or disassembles the result.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), v)
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	root.PersistentFlags().Bool("debug", false, "Debug output")
	root.PersistentFlags().Bool("nfc", false, "Normalize input to Unicode NFC before decoding")
	_ = v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	_ = v.BindPFlag("debug", root.PersistentFlags().Lookup("debug"))
	_ = v.BindPFlag("nfc", root.PersistentFlags().Lookup("nfc"))

	v.SetEnvPrefix("SYMBLER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	root.AddCommand(
		newRenderCmd(v),
		newLinesCmd(v),
		newDisasmCmd(v),
		newAsmCmd(),
	)
	return root
}

// bindFlags binds every local flag of cmd to "<prefix>.<flag>", so
// SYMBLER_RENDER_SIDE configures --side of the render command.
func bindFlags(v *viper.Viper, prefix string, cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(prefix+"."+f.Name, f)
	})
}

func setupLogging(w io.Writer, v *viper.Viper) {
	level := slog.LevelWarn
	switch {
	case v.GetBool("debug"):
		level = slog.LevelDebug
	case v.GetBool("verbose"):
		level = slog.LevelInfo
	}
	symbler.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// parseOptions maps the persistent flags to Parse options.
func parseOptions(v *viper.Viper) []symbler.Option {
	if v.GetBool("nfc") {
		return []symbler.Option{symbler.WithNormalization(norm.NFC)}
	}
	return nil
}

// readInput joins the arguments into one program, or reads stdin when
// there are none.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}
