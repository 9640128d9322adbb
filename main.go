package main

import (
	"context"

	"github.com/NickyBoy89/ktsurface/parsing"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	var extensions []string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "ktsurface <path>",
		Short: "Print the public declarations of every Kotlin file under a path",
		Long: `ktsurface walks a file or directory, and prints the public classes,
functions, and properties of every Kotlin source file it finds, with the
bodies of functions left out.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// A wrong number of paths is not an error, just print how to use
			// the command
			if len(args) != 1 {
				return cmd.Usage()
			}

			if verbose {
				log.SetLevel(log.DebugLevel)
			}

			walker := &Walker{
				Parser:     parsing.NewKotlinParser(),
				Extensions: extensions,
				Out:        cmd.OutOrStdout(),
			}
			return walker.Walk(cmd.Context(), args[0])
		},
	}

	cmd.Flags().StringSliceVar(&extensions, "ext", []string{".kt"}, "File extensions to parse")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Additional debug info")

	return cmd
}
