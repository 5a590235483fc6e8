// butterflyc compiles a use case diagram document into a Butterfly portal
// module.
//
// Usage:
//
//	butterflyc -f portal.yaml -o ./out [-backend purescript,go] [-watch] [-force]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/syssam/butterflyc"
	"github.com/syssam/butterflyc/compiler/gen"
	"github.com/syssam/butterflyc/compiler/gen/golang"
	"github.com/syssam/butterflyc/compiler/gen/purescript"
)

func main() {
	var (
		file     = flag.String("f", "", "diagram document to compile")
		out      = flag.String("o", ".", "output directory")
		backends = flag.String("backend", "purescript", "comma-separated backends: purescript, go")
		module   = flag.String("module", "", "generated module name (default: from document)")
		portal   = flag.String("portal", "", "generated portal value name (default: from document)")
		watch    = flag.Bool("watch", false, "watch the document and regenerate on change")
		force    = flag.Bool("force", false, "regenerate even if the diagram is unchanged")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "butterflyc: no diagram document given (-f)")
		flag.Usage()
		os.Exit(2)
	}

	bs, err := parseBackends(*backends)
	if err != nil {
		fmt.Fprintf(os.Stderr, "butterflyc: %v\n", err)
		os.Exit(2)
	}

	opts := []gen.Option{gen.WithTarget(*out)}
	if *module != "" {
		opts = append(opts, gen.WithModule(*module))
	}
	if *portal != "" {
		opts = append(opts, gen.WithPortalName(*portal))
	}

	ctx := context.Background()
	if err := run(ctx, *file, *out, bs, opts, *force); err != nil {
		fmt.Fprintf(os.Stderr, "butterflyc: %v\n", err)
		os.Exit(1)
	}

	if *watch {
		if err := watchAndRegenerate(ctx, *file, *out, bs, opts); err != nil {
			fmt.Fprintf(os.Stderr, "butterflyc: %v\n", err)
			os.Exit(1)
		}
	}
}

// run generates once, skipping the run when the stored snapshot already
// matches the document.
func run(ctx context.Context, file, out string, backends []gen.Backend, opts []gen.Option, force bool) error {
	if !force {
		ok, err := butterflyc.UpToDate(file, out)
		if err != nil {
			return err
		}
		if ok {
			fmt.Printf("%s: up to date\n", file)
			return nil
		}
	}
	if err := butterflyc.Generate(ctx, file, backends, opts...); err != nil {
		return err
	}
	fmt.Printf("%s: generated\n", file)
	return nil
}

func parseBackends(list string) ([]gen.Backend, error) {
	var bs []gen.Backend
	for _, name := range strings.Split(list, ",") {
		switch strings.TrimSpace(name) {
		case "purescript":
			bs = append(bs, purescript.New())
		case "go":
			bs = append(bs, golang.New())
		case "":
		default:
			return nil, fmt.Errorf("unknown backend %q", name)
		}
	}
	if len(bs) == 0 {
		return nil, fmt.Errorf("no backends selected")
	}
	return bs, nil
}
