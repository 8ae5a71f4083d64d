package commands

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iustin/goxattr"
)

// GetCmd prints the raw attribute value to stdout, NULs and all, so the
// output can be piped or redirected without mangling binary values.
var GetCmd = &cobra.Command{
	Use:   "get <path> <name>",
	Short: "Print the value of an extended attribute.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			logrus.Fatalln("please specify a path and an attribute name")
		}
		path, name := args[0], args[1]

		value, err := goxattr.Get(path, name, commonOpts()...)
		if err != nil {
			if goxattr.IsAttrNotFound(err) {
				logrus.Fatalf("%s: no attribute %q", path, name)
			}
			logrus.Fatalf("error reading %s: %v", path, err)
		}

		os.Stdout.Write(value)
	},
}
