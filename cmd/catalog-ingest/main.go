// Command catalog-ingest converts raw supplier feed files into a catalog
// YAML document. Feeds are line-based "name|price|quantity" files, plain or
// gzip-compressed, and may be large; duplicate product names across feeds
// are dropped (first feed wins).
package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/Mazdaratti/bestbuy/internal/catalog"
	"github.com/Mazdaratti/bestbuy/internal/domain/product"
)

const (
	bloomCapacity = 10_000_000
	bloomFPR      = 0.0001
	progressEvery = 1_000_000
	feedFields    = 3
)

func main() {
	var out string
	flag.StringVar(&out, "out", "catalog.yaml", "output catalog file")
	flag.Parse()

	feeds := flag.Args()
	if len(feeds) == 0 {
		slog.Error("no feed files given: usage catalog-ingest [-out catalog.yaml] feed1 [feed2 ...]")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, feeds, out); err != nil {
		slog.Error("catalog ingest failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("catalog ingest completed successfully")
}

func run(ctx context.Context, feeds []string, out string) error {
	for _, f := range feeds {
		if _, err := os.Stat(f); err != nil {
			return errors.Wrapf(err, "check feed %s", f)
		}
	}

	// Parse all feeds concurrently, one entry slice per feed.
	slog.Info("parsing feeds", slog.Int("feeds", len(feeds)))

	parsed := make([][]catalog.ProductSpec, len(feeds))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range feeds {
		g.Go(parseFeed(gctx, i, f, parsed))
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Merge in feed order. The bloom filter drops names already taken by an
	// earlier feed; its false positive rate may drop the odd unique product,
	// which is acceptable for feed-scale dedup (same trade as any
	// probabilistic membership check).
	seen := bloom.NewWithEstimates(bloomCapacity, bloomFPR)
	var merged []catalog.ProductSpec
	dropped := 0
	for _, specs := range parsed {
		for _, spec := range specs {
			if seen.TestString(spec.Name) {
				dropped++
				continue
			}
			seen.AddString(spec.Name)
			merged = append(merged, spec)
		}
	}

	slog.Info("feeds merged",
		slog.Int("products", len(merged)),
		slog.Int("duplicates_dropped", dropped),
	)

	return writeCatalog(out, merged)
}

func parseFeed(ctx context.Context, idx int, path string, parsed [][]catalog.ProductSpec) func() error {
	return func() error {
		var (
			specs []catalog.ProductSpec
			count uint64
		)

		if err := streamFeed(ctx, path, func(line string) error {
			spec, err := parseLine(line)
			if err != nil {
				return err
			}
			specs = append(specs, spec)

			count++
			if count%progressEvery == 0 {
				slog.Info("parse progress",
					slog.Int("feed", idx+1),
					slog.Uint64("lines", count),
				)
			}
			return nil
		}); err != nil {
			return errors.Wrapf(err, "parse feed %s", path)
		}

		slog.Info("feed parsed",
			slog.Int("feed", idx+1),
			slog.Uint64("lines", count),
		)

		parsed[idx] = specs
		return nil
	}
}

// parseLine converts one "name|price|quantity" feed line into a product
// spec, running it through the domain constructor so malformed feed entries
// fail the ingest instead of poisoning the catalog.
func parseLine(line string) (catalog.ProductSpec, error) {
	parts := strings.Split(line, "|")
	if len(parts) != feedFields {
		return catalog.ProductSpec{}, errors.Errorf("malformed line %q", line)
	}

	name := strings.TrimSpace(parts[0])
	price, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return catalog.ProductSpec{}, errors.Wrapf(err, "price in line %q", line)
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return catalog.ProductSpec{}, errors.Wrapf(err, "quantity in line %q", line)
	}

	if _, err := product.NewStandard(name, price, quantity); err != nil {
		return catalog.ProductSpec{}, err
	}

	return catalog.ProductSpec{
		Name:     name,
		Variant:  string(product.VariantStandard),
		Price:    price.String(),
		Quantity: quantity,
	}, nil
}

// streamFeed calls fn for every non-empty line of a plain or gzipped feed.
func streamFeed(ctx context.Context, path string, fn func(line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return errors.Wrapf(err, "create gzip reader for %s", path)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "scan %s", path)
	}

	return nil
}

func writeCatalog(path string, products []catalog.ProductSpec) error {
	data, err := yaml.Marshal(&catalog.File{Products: products})
	if err != nil {
		return errors.Wrap(err, "marshal catalog")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}

	slog.Info("catalog written", slog.String("path", path), slog.Int("products", len(products)))
	return nil
}
