package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iustin/goxattr"
)

var (
	MainCmd = &cobra.Command{
		Use:   "goxattr <command>",
		Short: "Inspect and modify filesystem extended attributes.",
	}

	// usageTemplate is nearly identical to the default template without the
	// automatic addition of flags. Instead, Command.Use is used unmodified.
	usageTemplate = `{{ $cmd := . }}
Usage: {{if .Runnable}}
  {{.UseLine}}{{end}}{{if gt .Aliases 0}}

Aliases:
  {{.NameAndAliases}}
{{end}}{{if .HasExample}}

Examples:
{{ .Example }}{{end}}{{ if .HasNonHelpSubCommands}}

Available Commands: {{range .Commands}}{{if (not .IsHelpCommand)}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{ if .HasLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages}}{{end}}{{ if .HasInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics: {{range .Commands}}{{if .IsHelpCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}}{{end}}{{end}}{{ if .HasSubCommands }}

Use "{{.CommandPath}} [command] --help" for more information about a command.
{{end}}`

	mainConfig struct {
		nofollow  bool
		namespace string
		debug     bool
	}
)

func init() {
	MainCmd.PersistentFlags().BoolVar(&mainConfig.nofollow, "nofollow", false, "operate on symlinks themselves instead of their targets")
	MainCmd.PersistentFlags().StringVarP(&mainConfig.namespace, "namespace", "n", "", "attribute namespace to qualify names with and filter listings by")
	MainCmd.PersistentFlags().BoolVar(&mainConfig.debug, "debug", false, "enable debug logging")

	MainCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if mainConfig.debug {
			logrus.SetLevel(logrus.DebugLevel)
		}
	}

	MainCmd.AddCommand(LSCmd)
	MainCmd.AddCommand(GetCmd)
	MainCmd.AddCommand(SetCmd)
	MainCmd.AddCommand(RMCmd)
	MainCmd.AddCommand(DumpCmd)
	MainCmd.SetUsageTemplate(usageTemplate)
}

// commonOpts translates the persistent flags into library options.
func commonOpts() []goxattr.Option {
	var opts []goxattr.Option
	if mainConfig.nofollow {
		opts = append(opts, goxattr.NoFollow())
	}
	if mainConfig.namespace != "" {
		opts = append(opts, goxattr.InNamespace(mainConfig.namespace))
	}
	return opts
}
