// Command dashboard prints the admin dashboard figures in the terminal.
// It pulls the raw collections over the HTTP API and aggregates locally,
// so the window and limits can differ from the server defaults.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"resto-admin-be/internal/client"
	"resto-admin-be/internal/dashboard"
	"resto-admin-be/internal/money"
	"resto-admin-be/internal/order"
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:8000", "API base URL")
		windowDays = flag.Int("window", dashboard.DefaultWindowDays, "recent-orders window in days")
		recent     = flag.Int("recent", dashboard.DefaultRecentLimit, "max recent orders to show")
		popular    = flag.Int("popular", dashboard.DefaultPopularLimit, "max popular items to show")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	api := client.New(*baseURL)

	orders, err := api.ListOrders(ctx)
	if err != nil {
		log.Fatalf("fetching orders: %v", err)
	}
	menuItems, err := api.ListMenuItems(ctx)
	if err != nil {
		log.Fatalf("fetching menu: %v", err)
	}

	summary, err := dashboard.ComputeSummary(orders, menuItems)
	if err != nil {
		log.Fatalf("summary: %v", err)
	}
	recentOrders, err := dashboard.RecentOrders(orders, time.Now(), *windowDays, *recent)
	if err != nil {
		log.Fatalf("recent orders: %v", err)
	}
	popularItems, err := dashboard.PopularItems(orders, *popular)
	if err != nil {
		log.Fatalf("popular items: %v", err)
	}

	printSummary(summary)
	printRecent(recentOrders, *windowDays)
	printPopular(popularItems)
}

func printSummary(s dashboard.Summary) {
	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SUMMARY\t")
	fmt.Fprintf(tw, "Total revenue\t%s\n", s.TotalRevenue.StringFixed(2))
	fmt.Fprintf(tw, "Total orders\t%d\n", s.TotalOrders)
	fmt.Fprintf(tw, "Menu items\t%d\n", s.MenuItemsCount)
	fmt.Fprintf(tw, "Average order\t%s\n", s.AverageOrderAmount.StringFixed(2))
	tw.Flush()
	fmt.Println()
}

func printRecent(orders []order.Order, windowDays int) {
	fmt.Printf("RECENT ORDERS (last %d days)\n", windowDays)
	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Number\tDate\tItems\tTotal")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", o.OrderNumber, formatDate(o.OrderDate), len(o.Items), o.Total)
	}
	tw.Flush()
	fmt.Println()
}

func printPopular(stats []dashboard.ItemStat) {
	fmt.Println("POPULAR ITEMS")
	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Item\tCategory\tOrdered\tRevenue")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", s.Item.Name, s.Item.Category, s.TotalOrdered, s.Revenue.StringFixed(2))
	}
	tw.Flush()
}

func formatDate(unixStr string) string {
	ts, err := money.ParseUnix(unixStr)
	if err != nil {
		return unixStr
	}
	return time.Unix(ts, 0).UTC().Format("2006-01-02")
}
