// Package cli implements the interactive store menu. It collects and
// validates free-text input, renders results, and delegates every business
// decision to the domain packages.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/Mazdaratti/bestbuy/internal/domain/order"
	"github.com/Mazdaratti/bestbuy/internal/domain/store"
)

// Metrics holds the order counters the CLI increments. Nil counters are
// skipped, so a zero Metrics disables instrumentation.
type Metrics struct {
	OrdersPlaced metric.Int64Counter
	OrdersFailed metric.Int64Counter
}

// CLI drives the interactive menu over a line-based input and an output
// writer. It holds no business rules.
type CLI struct {
	store   *store.Store
	orders  *order.Service
	in      *bufio.Scanner
	out     io.Writer
	lg      *zap.Logger
	metrics Metrics
}

// New creates a CLI over the given store and order service.
func New(s *store.Store, orders *order.Service, in io.Reader, out io.Writer, lg *zap.Logger, m Metrics) *CLI {
	return &CLI{
		store:   s,
		orders:  orders,
		in:      bufio.NewScanner(in),
		out:     out,
		lg:      lg,
		metrics: m,
	}
}

// Run loops over the menu until the user quits, input ends, or the context
// is cancelled.
func (c *CLI) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printMenu()
		choice, ok := c.prompt("Please choose a number: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			c.listProducts()
		case "2":
			fmt.Fprintf(c.out, "Total of %d items in store\n", c.store.TotalQuantity())
		case "3":
			c.makeOrder(ctx)
		case "4":
			fmt.Fprintln(c.out, "Thanks for visiting Best Buy Shop! Bye!")
			return nil
		default:
			fmt.Fprintln(c.out, "Error with your choice! Try again.")
		}
	}
}

func (c *CLI) printMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "\tStore Menu")
	fmt.Fprintln(c.out, "\t----------")
	fmt.Fprintln(c.out, "1. List all products in store")
	fmt.Fprintln(c.out, "2. Show total amount in store")
	fmt.Fprintln(c.out, "3. Make an order")
	fmt.Fprintln(c.out, "4. Quit")
}

// prompt writes the prompt and reads one trimmed line. ok is false when
// input is exhausted.
func (c *CLI) prompt(text string) (line string, ok bool) {
	fmt.Fprint(c.out, text)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *CLI) listProducts() {
	fmt.Fprintln(c.out, strings.Repeat("-", 6))
	for i, p := range c.store.ActiveProducts() {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, p.Summary())
	}
	fmt.Fprintln(c.out, strings.Repeat("-", 6))
}

// makeOrder collects (product #, amount) pairs into a cart until an empty
// input, then commits the cart as one batch.
func (c *CLI) makeOrder(ctx context.Context) {
	cart := order.NewCart()
	c.listProducts()
	fmt.Fprintln(c.out, "When you want to finish the order, enter an empty text.")

	for {
		active := c.store.ActiveProducts()
		if len(active) == 0 {
			fmt.Fprintln(c.out, "No products available for ordering.")
			break
		}

		productInput, ok := c.prompt("Which product # do you want? ")
		if !ok || productInput == "" {
			break
		}
		quantityInput, ok := c.prompt("What amount do you want? ")
		if !ok || quantityInput == "" {
			break
		}

		index, errIndex := strconv.Atoi(productInput)
		quantity, errQuantity := strconv.Atoi(quantityInput)
		if errIndex != nil || errQuantity != nil ||
			index < 1 || index > len(active) || quantity < 1 {
			fmt.Fprintln(c.out, "Error adding product!")
			fmt.Fprintln(c.out)
			continue
		}

		cart.Add(active[index-1], quantity)
		fmt.Fprintln(c.out, "Product added to list!")
		fmt.Fprintln(c.out)
	}

	c.placeOrder(ctx, cart)
}

func (c *CLI) placeOrder(ctx context.Context, cart *order.Cart) {
	if cart.Empty() {
		fmt.Fprintln(c.out, "No products to order!")
		return
	}

	receipt, err := c.orders.PlaceOrder(ctx, cart.Lines())
	if err != nil {
		c.lg.Warn("order failed", zap.Error(err))
		if c.metrics.OrdersFailed != nil {
			c.metrics.OrdersFailed.Add(ctx, 1)
		}
		fmt.Fprintf(c.out, "Error while making order! %s\n", err)
		return
	}

	c.lg.Info("order placed",
		zap.String("receipt_id", receipt.ID),
		zap.String("total", receipt.Total.StringFixed(2)),
	)
	if c.metrics.OrdersPlaced != nil {
		c.metrics.OrdersPlaced.Add(ctx, 1)
	}

	fmt.Fprintln(c.out, strings.Repeat("*", 8))
	fmt.Fprintf(c.out, "Order made! Total payment: $%s.\n", receipt.Total.StringFixed(2))
}
