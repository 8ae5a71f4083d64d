package commands

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iustin/goxattr"
)

var (
	setCmdConfig struct {
		create  bool
		replace bool
		stdin   bool
	}

	SetCmd = &cobra.Command{
		Use:   "set <path> <name> [<value>]",
		Short: "Set the value of an extended attribute.",
		Run: func(cmd *cobra.Command, args []string) {
			var (
				path, name string
				value      []byte
			)

			switch {
			case len(args) == 3 && !setCmdConfig.stdin:
				path, name = args[0], args[1]
				value = []byte(args[2])
			case len(args) == 2 && setCmdConfig.stdin:
				path, name = args[0], args[1]
				p, err := io.ReadAll(os.Stdin)
				if err != nil {
					logrus.Fatalf("error reading value from stdin: %v", err)
				}
				value = p
			default:
				logrus.Fatalln("please specify a path, a name and a value (or --stdin)")
			}

			opts := commonOpts()
			switch {
			case setCmdConfig.create && setCmdConfig.replace:
				logrus.Fatalln("--create and --replace are mutually exclusive")
			case setCmdConfig.create:
				opts = append(opts, goxattr.Create())
			case setCmdConfig.replace:
				opts = append(opts, goxattr.Replace())
			}

			if err := goxattr.Set(path, name, value, opts...); err != nil {
				logrus.Fatalf("error setting %s on %s: %v", name, path, err)
			}
		},
	}
)

func init() {
	SetCmd.Flags().BoolVar(&setCmdConfig.create, "create", false, "fail if the attribute already exists")
	SetCmd.Flags().BoolVar(&setCmdConfig.replace, "replace", false, "fail if the attribute does not exist")
	SetCmd.Flags().BoolVar(&setCmdConfig.stdin, "stdin", false, "read the value from stdin")
}
