package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iustin/goxattr"
)

var (
	lsCmdConfig struct {
		long bool
	}

	LSCmd = &cobra.Command{
		Use:   "ls <path>...",
		Short: "List the extended attribute names of each path.",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				logrus.Fatalln("please specify at least one path")
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)

			for _, path := range args {
				if lsCmdConfig.long {
					attrs, err := goxattr.GetAll(path, commonOpts()...)
					if err != nil {
						logrus.Fatalf("error listing %s: %v", path, err)
					}
					for _, attr := range attrs {
						fmt.Fprintf(w, "%s\t%s\t%s\n", path, attr.Name, humanize.Bytes(uint64(len(attr.Value))))
					}
					continue
				}

				names, err := goxattr.List(path, commonOpts()...)
				if err != nil {
					logrus.Fatalf("error listing %s: %v", path, err)
				}
				for _, name := range names {
					fmt.Fprintf(w, "%s\t%s\n", path, name)
				}
			}

			w.Flush()
		},
	}
)

func init() {
	LSCmd.Flags().BoolVarP(&lsCmdConfig.long, "long", "l", false, "also read each attribute and show its value size")
}
