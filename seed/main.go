package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"tinyhouse/config"
	"tinyhouse/database"
	"tinyhouse/models"
	"tinyhouse/services/availability"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type place struct {
	Address string
	Country string
	Admin   string
	City    string
}

var places = []place{
	{"251 North Bristol Avenue, Los Angeles, California", "United States", "California", "Los Angeles"},
	{"100 Hollywood Hills Drive, Los Angeles, California", "United States", "California", "Los Angeles"},
	{"3 Ashville Road, Toronto, Ontario", "Canada", "Ontario", "Toronto"},
	{"12 Bayview Street, Toronto, Ontario", "Canada", "Ontario", "Toronto"},
	{"88 Baker Street, London, England", "United Kingdom", "England", "London"},
	{"7 Rue de Rivoli, Paris, Île-de-France", "France", "Île-de-France", "Paris"},
	{"1-2 Shibuya, Tokyo", "Japan", "Tokyo", "Shibuya City"},
	{"45 George Street, Sydney, New South Wales", "Australia", "New South Wales", "Sydney"},
}

func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Clear existing data.
	for _, name := range []string{"users", "listings", "bookings"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", name, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()
	today := availability.Date(now.Year(), now.Month(), now.Day())

	hostsCount := 4
	listingsPerHost := 3

	var users []interface{}
	var listings []interface{}

	for h := 1; h <= hostsCount; h++ {
		host := models.User{
			ID:        uuid.New().String(),
			Name:      fmt.Sprintf("Host %d", h),
			Avatar:    fmt.Sprintf("https://i.pravatar.cc/150?img=%d", h),
			Contact:   fmt.Sprintf("host%d@tinyhouse.dev", h),
			Bookings:  []string{},
			Listings:  []string{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		// Odd-numbered hosts get a connected wallet.
		if h%2 == 1 {
			host.WalletID = fmt.Sprintf("acct_seed_%d", h)
		}

		for i := 0; i < listingsPerHost; i++ {
			p := places[rng.Intn(len(places))]
			listingType := models.ListingTypeApartment
			if rng.Intn(2) == 0 {
				listingType = models.ListingTypeHouse
			}

			// Pre-book a short stay a few days out.
			start := today.AddDate(0, 0, 3+rng.Intn(14))
			index, err := availability.New().WithRangeBooked(start, start.AddDate(0, 0, rng.Intn(3)))
			if err != nil {
				log.Fatalf("Failed to build bookings index: %v", err)
			}

			l := models.Listing{
				ID:            uuid.New().String(),
				Title:         fmt.Sprintf("%s %s in %s", adjective(rng), strings.ToLower(string(listingType)), p.City),
				Description:   "A tiny house with everything you need for a short stay.",
				Image:         fmt.Sprintf("https://picsum.photos/seed/%d-%d/800/600", h, i),
				Host:          host.ID,
				Type:          listingType,
				Address:       p.Address,
				Country:       p.Country,
				Admin:         p.Admin,
				City:          p.City,
				Bookings:      []string{},
				BookingsIndex: index,
				Price:         int64(5000 + rng.Intn(45000)),
				NumOfGuests:   1 + rng.Intn(6),
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			host.Listings = append(host.Listings, l.ID)
			listings = append(listings, l)
		}
		users = append(users, host)
	}

	for t := 1; t <= 2; t++ {
		users = append(users, models.User{
			ID:        uuid.New().String(),
			Name:      fmt.Sprintf("Tenant %d", t),
			Avatar:    fmt.Sprintf("https://i.pravatar.cc/150?img=%d", 20+t),
			Contact:   fmt.Sprintf("tenant%d@tinyhouse.dev", t),
			Bookings:  []string{},
			Listings:  []string{},
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if _, err := db.Collection("users").InsertMany(ctx, users); err != nil {
		log.Fatalf("Failed to insert users: %v", err)
	}
	if _, err := db.Collection("listings").InsertMany(ctx, listings); err != nil {
		log.Fatalf("Failed to insert listings: %v", err)
	}

	fmt.Printf("Seeded %d users and %d listings\n", len(users), len(listings))
}

func adjective(rng *rand.Rand) string {
	words := []string{"Cozy", "Bright", "Quiet", "Modern", "Rustic", "Charming"}
	return words[rng.Intn(len(words))]
}
