package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"text/tabwriter"
	"unicode"

	"github.com/dustin/go-humanize"
	"github.com/opencontainers/go-digest"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/iustin/goxattr"
)

var (
	dumpCmdConfig struct {
		workers int
	}

	// DumpCmd walks each root and prints every attribute of every entry.
	// Values that are short and printable appear verbatim; anything else
	// is summarized as its size plus a content digest, since xattrs are
	// frequently binary (ACLs, capability sets).
	DumpCmd = &cobra.Command{
		Use:   "dump <root>...",
		Short: "Recursively dump all extended attributes under each root.",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				logrus.Fatalln("please specify at least one root")
			}

			type entry struct {
				path  string
				attrs []goxattr.Attr
			}

			var (
				mu      sync.Mutex
				entries []entry
			)

			var eg errgroup.Group
			eg.SetLimit(dumpCmdConfig.workers)

			for _, root := range args {
				err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
					if err != nil {
						return err
					}

					eg.Go(func() error {
						// NoFollow here: the walk reports symlinks as
						// themselves, so dump their own attributes.
						attrs, err := goxattr.GetAll(path, append(commonOpts(), goxattr.NoFollow())...)
						if err != nil {
							if goxattr.IsNotSupported(err) {
								logrus.Debugf("skipping %s: xattrs not supported", path)
								return nil
							}
							return err
						}
						if len(attrs) == 0 {
							return nil
						}

						mu.Lock()
						entries = append(entries, entry{path: path, attrs: attrs})
						mu.Unlock()
						return nil
					})
					return nil
				})
				if err != nil {
					logrus.Fatalf("error walking %s: %v", root, err)
				}
			}

			if err := eg.Wait(); err != nil {
				logrus.Fatalf("error dumping attributes: %v", err)
			}

			sort.Slice(entries, func(i, j int) bool { return entries[i].path < entries[j].path })

			w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
			for _, e := range entries {
				for _, attr := range e.attrs {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.path, attr.Name,
						humanize.Bytes(uint64(len(attr.Value))), formatValue(attr.Value))
				}
			}
			w.Flush()
		},
	}
)

const maxInlineValue = 64

func formatValue(p []byte) string {
	if len(p) <= maxInlineValue && printable(p) {
		return strconv.Quote(string(p))
	}
	return digest.FromBytes(p).String()
}

func printable(p []byte) bool {
	for _, b := range p {
		if b > unicode.MaxASCII || !unicode.IsPrint(rune(b)) {
			return false
		}
	}
	return true
}

func init() {
	DumpCmd.Flags().IntVar(&dumpCmdConfig.workers, "workers", 8, "maximum concurrent attribute readers")
}
