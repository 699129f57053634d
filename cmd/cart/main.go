// Command cart is the terminal counterpart of the browser storefront:
// it keeps a cart document in a per-profile JSON file and joins it
// against the live catalog API for display.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"techstore/cart"
	"techstore/models"
)

const usage = `Usage: cart <command> [args]

Commands:
  list             list catalog products
  users            list catalog users
  show             show the cart with line totals and subtotal
  add <id>         add one of product <id>
  inc <id>         increase quantity of product <id> by one
  dec <id>         decrease quantity of product <id> by one
  set <id> <qty>   set quantity of product <id> (0 removes the line)
  rm <id>          remove product <id>
  clear            empty the cart
  checkout         demo checkout: empties the cart

Environment:
  TECHSTORE_API        API base URL (default http://localhost:3000)
  TECHSTORE_CART_FILE  cart file (default ~/.techstore/cart.json)`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	apiBase := os.Getenv("TECHSTORE_API")
	if apiBase == "" {
		apiBase = "http://localhost:3000"
	}

	cartPath := os.Getenv("TECHSTORE_CART_FILE")
	if cartPath == "" {
		cartPath = cart.DefaultCartPath()
	}
	engine := cart.NewEngine(cart.NewFileSlot(cartPath))

	client := &apiClient{base: apiBase, http: &http.Client{Timeout: 10 * time.Second}}

	var err error
	switch cmd := os.Args[1]; cmd {
	case "list":
		err = listProducts(client)
	case "users":
		err = listUsers(client)
	case "show":
		err = showCart(client, engine)
	case "add":
		err = mutate(engine.AddItem, argID())
	case "inc":
		err = mutate(engine.IncrementQuantity, argID())
	case "dec":
		err = mutate(engine.DecrementQuantity, argID())
	case "rm":
		err = mutate(engine.RemoveItem, argID())
	case "set":
		id := argID()
		qty, convErr := strconv.Atoi(arg(3, "qty"))
		if convErr != nil {
			fmt.Fprintln(os.Stderr, "qty must be a number")
			os.Exit(2)
		}
		_, err = engine.SetQuantity(id, qty)
	case "clear":
		_, err = engine.ClearCart()
	case "checkout":
		if _, err = engine.Checkout(); err == nil {
			fmt.Println("Order placed (demo). Cart cleared.")
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s\n", cmd, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func arg(n int, name string) string {
	if len(os.Args) <= n {
		fmt.Fprintf(os.Stderr, "missing %s argument\n\n%s\n", name, usage)
		os.Exit(2)
	}
	return os.Args[n]
}

func argID() int {
	id, err := strconv.Atoi(arg(2, "id"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "id must be a number")
		os.Exit(2)
	}
	return id
}

func mutate(op func(int) (cart.Document, error), id int) error {
	doc, err := op(id)
	if err != nil {
		return err
	}
	fmt.Printf("Cart: %d item(s)\n", doc.ItemCount())
	return nil
}

type apiClient struct {
	base string
	http *http.Client
}

type productList struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Data    []models.Product `json:"data"`
}

type userList struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Data    []models.User `json:"data"`
}

func (c *apiClient) get(path string, out interface{}) error {
	resp, err := c.http.Get(c.base + path)
	if err != nil {
		return fmt.Errorf("could not reach %s: %w", c.base, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API responded with %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *apiClient) products() ([]models.Product, error) {
	var list productList
	if err := c.get("/api/products", &list); err != nil {
		return nil, err
	}
	if !list.Success {
		return nil, fmt.Errorf("API reported failure")
	}
	return list.Data, nil
}

func listProducts(c *apiClient) error {
	products, err := c.products()
	if err != nil {
		return err
	}
	for _, p := range products {
		fmt.Printf("%3d  %-28s %-12s ₹%-8d stock %d\n", p.ID, p.Name, p.Category, p.Price, p.Stock)
	}
	return nil
}

func listUsers(c *apiClient) error {
	var list userList
	if err := c.get("/api/users", &list); err != nil {
		return err
	}
	for _, u := range list.Data {
		fmt.Printf("%3d  %-24s %-28s %s\n", u.ID, u.Name, u.Email, u.Role)
	}
	return nil
}

func showCart(c *apiClient, engine *cart.Engine) error {
	doc := engine.LoadCart()
	if doc.ItemCount() == 0 {
		fmt.Println("Your cart is empty.")
		return nil
	}

	products, err := c.products()
	if err != nil {
		// Cart state stays untouched; only the display needs the catalog.
		return fmt.Errorf("could not load catalog: %w", err)
	}

	totals := cart.ComputeTotals(doc, cart.ProductIndex(products))
	fmt.Printf("%d item(s) in cart\n\n", doc.ItemCount())
	for _, line := range totals.Lines {
		fmt.Printf("%3d  %-28s x%-3d ₹%d\n", line.Product.ID, line.Product.Name, line.Qty, line.LineTotal)
	}
	fmt.Printf("\nSubtotal: ₹%d\nTotal:    ₹%d\n", totals.Subtotal, totals.Subtotal)
	return nil
}
