//go:build ignore

// Локальная заглушка API поездок: go run scripts/fake_trip_api.go -addr :5000
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
)

var boroughs = []string{"Manhattan", "Brooklyn", "Queens", "Bronx", "Staten Island"}

func main() {
	addr := flag.String("addr", ":5000", "listen address")
	points := flag.Int("points", 10000, "heatmap points to return")
	failRate := flag.Float64("fail", 0, "share of requests answered with 500")
	flag.Parse()

	app := fiber.New(fiber.Config{AppName: "fake-trip-api"})

	app.Use(func(c *fiber.Ctx) error {
		log.Printf("%s %s", c.Method(), c.OriginalURL())
		if *failRate > 0 && rand.Float64() < *failRate {
			return c.Status(fiber.StatusInternalServerError).SendString("simulated upstream failure")
		}
		return c.Next()
	})

	app.Get("/api/metrics", func(c *fiber.Ctx) error {
		start, err := time.Parse("2006-01-02", c.Query("start", "2016-01-01"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).SendString("bad start date")
		}

		series := make([]fiber.Map, 0, 31)
		total := 0
		for d := 0; d < 31; d++ {
			n := 30000 + rand.Intn(10000)
			total += n
			series = append(series, fiber.Map{
				"date":  start.AddDate(0, 0, d).Format("2006-01-02"),
				"trips": n,
			})
		}

		byBorough := make([]fiber.Map, 0, len(boroughs))
		for i, b := range boroughs {
			byBorough = append(byBorough, fiber.Map{"borough": b, "trips": total / (i + 2)})
		}

		return c.JSON(fiber.Map{
			"totalTrips":      total,
			"totalDistanceKm": float64(total) * 4.7,
			"avgFare":         13.4,
			"avgTripTimeMin":  14.25,
			"timeSeries":      series,
			"byBorough":       byBorough,
		})
	})

	app.Get("/api/geo/heatmap", func(c *fiber.Ctx) error {
		out := make([][2]float64, *points)
		for i := range out {
			out[i] = [2]float64{40.60 + rand.Float64()*0.3, -74.05 + rand.Float64()*0.3}
		}
		return c.JSON(out)
	})

	app.Get("/api/trips", func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 50)
		rows := make([]fiber.Map, 0, limit)
		pickup := time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < limit; i++ {
			p := pickup.Add(time.Duration(i) * 7 * time.Minute)
			rows = append(rows, fiber.Map{
				"pickup_datetime":  p.Format("2006-01-02 15:04:05"),
				"dropoff_datetime": p.Add(12 * time.Minute).Format("2006-01-02 15:04:05"),
				"passenger_count":  1 + rand.Intn(4),
				"trip_distance_km": float64(rand.Intn(200)) / 10,
				"fare_amount":      float64(500+rand.Intn(4000)) / 100,
				"pickup_borough":   boroughs[rand.Intn(len(boroughs))],
				"dropoff_borough":  boroughs[rand.Intn(len(boroughs))],
			})
		}
		return c.JSON(fiber.Map{"rows": rows})
	})

	fmt.Printf("fake trip API listening on %s\n", *addr)
	log.Fatal(app.Listen(*addr))
}
