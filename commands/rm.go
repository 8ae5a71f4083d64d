package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iustin/goxattr"
)

var RMCmd = &cobra.Command{
	Use:   "rm <path> <name>...",
	Short: "Remove extended attributes.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			logrus.Fatalln("please specify a path and at least one attribute name")
		}
		path := args[0]

		for _, name := range args[1:] {
			if err := goxattr.Remove(path, name, commonOpts()...); err != nil {
				if goxattr.IsAttrNotFound(err) {
					logrus.Fatalf("%s: no attribute %q", path, name)
				}
				logrus.Fatalf("error removing %s from %s: %v", name, path, err)
			}
		}
	},
}
