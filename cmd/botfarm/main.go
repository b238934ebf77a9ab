package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/Nishat-Ahmad/CRITiQUE/internal/config"
	"github.com/Nishat-Ahmad/CRITiQUE/internal/db"
	"github.com/Nishat-Ahmad/CRITiQUE/internal/models"
	"github.com/Nishat-Ahmad/CRITiQUE/internal/repository"
	"github.com/Nishat-Ahmad/CRITiQUE/internal/service"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// botfarm: siembra datos de demo y simula actividad orgánica de reviews.
// Determinístico con -seed fijo, así los demos siempre se ven iguales.

// peso de popularidad por lugar (los que no figuran usan defaultWeight)
var popularPlaces = map[string]float64{
	"Ayan Gardens":      4.0,
	"Raju Campus Hotel": 4.0,
	"Hot N Spicy":       3.0,
}

const (
	defaultWeight   = 1.0
	starOnlyProb    = 0.35 // % de reviews sin texto
	botPasswordCost = bcrypt.MinCost // son cuentas de demo, no hace falta costo real
)

func main() {
	days := flag.Int("days", 14, "días hacia atrás a poblar")
	perDay := flag.Int("reviews-per-day", 6, "reviews promedio por día")
	seed := flag.Int64("seed", 20251220, "semilla del RNG")
	reset := flag.Bool("reset", false, "borra places/reviews/users antes de sembrar")
	flag.Parse()

	cfg := config.Load()
	db.InitMongo(cfg)

	ctx := context.Background()
	defer db.Disconnect(ctx)
	rng := rand.New(rand.NewSource(*seed))

	if *reset {
		log.Println("⚡ BORRANDO COLECCIONES...")
		for _, col := range []string{"users", "places", "reviews", "recommendations"} {
			if err := db.DB().Collection(col).Drop(ctx); err != nil {
				log.Fatalf("error borrando %s: %v", col, err)
			}
		}
	}

	userRepo := repository.NewUserRepository()
	placeRepo := repository.NewPlaceRepository()
	reviewRepo := repository.NewReviewRepository()
	reviewSvc := service.NewReviewService(reviewRepo, placeRepo, userRepo)

	users := ensureUsers(ctx, userRepo)
	places := ensurePlaces(ctx, placeRepo, users)

	generateActivity(ctx, reviewSvc, rng, users, places, *days, *perDay)

	log.Println("✅ botfarm listo.")
}

// ====== Seed de usuarios ======

var botUsers = []struct {
	Email, Name, University string
	PreferredTags           []string
}{
	{"ali.khan@giki.edu.pk", "Ali Khan", "GIKI", []string{"spicy", "bbq"}},
	{"sara.ahmed@giki.edu.pk", "Sara Ahmed", "GIKI", []string{"coffee", "desserts"}},
	{"bilal@giki.edu.pk", "Bilal", "GIKI", []string{"chai", "paratha"}},
	{"zainab@giki.edu.pk", "Zainab", "GIKI", []string{"juices", "shakes"}},
	{"omar@giki.edu.pk", "Omar", "GIKI", []string{"karahi", "desi"}},
	{"hira@giki.edu.pk", "Hira", "GIKI", nil},
	{"danish@giki.edu.pk", "Danish", "GIKI", []string{"fast food"}},
}

func ensureUsers(ctx context.Context, repo *repository.UserRepository) []*models.UserDoc {
	log.Println("⚡ SEMBRANDO USUARIOS...")
	now := time.Now().UTC().Format(time.RFC3339)

	out := make([]*models.UserDoc, 0, len(botUsers))
	for _, bu := range botUsers {
		existing, err := repo.FindByEmail(ctx, bu.Email)
		if err != nil {
			log.Fatalf("error buscando usuario %s: %v", bu.Email, err)
		}
		if existing != nil {
			out = append(out, existing)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte("123"), botPasswordCost)
		if err != nil {
			log.Fatal(err)
		}
		u := &models.UserDoc{
			ID:            uuid.NewString(),
			Email:         bu.Email,
			Name:          bu.Name,
			PasswordHash:  string(hash),
			Role:          "student",
			University:    bu.University,
			PreferredTags: bu.PreferredTags,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := repo.Insert(ctx, u); err != nil {
			log.Fatalf("error insertando usuario %s: %v", bu.Email, err)
		}
		out = append(out, u)
	}
	return out
}

// ====== Seed de lugares ======

var botPlaces = []models.PlaceCreateRequest{
	{
		Name: "Hot N Spicy", Type: "Fast Food", Address: "Tuc (Student Center)",
		Tags:        "roll paratha,zinger,spicy,tuc,late-night",
		Description: "The legendary spot for Zinger Burgers and Roll Parathas.",
	},
	{
		Name: "Raju Campus Hotel", Type: "Cafe", Address: "Tuc (Student Center)",
		Tags:        "tea,chai,paratha,breakfast,cheap",
		Description: "Best chai on campus. The Aloo Paratha is a breakfast staple.",
	},
	{
		Name: "Ayan Gardens", Type: "Restaurant", Address: "Near Hostels",
		Tags:        "juices,shakes,fries,rice,dinner",
		Description: "Great spot for fresh juices, shakes, and heavy dinner options.",
	},
	{
		Name: "Asrar Bucks", Type: "Cafe", Address: "Faculty Market",
		Tags:        "coffee,shakes,cold coffee,oreo",
		Description: "The place to go for a caffeine fix or a sweet treat.",
	},
	{
		Name: "Khyber Shinwari", Type: "Restaurant", Address: "Behind Tuc",
		Tags:        "karahi,bbq,dinner,desi,heavy",
		Description: "Authentic Shinwari Karahi. Bring a group, it's worth the wait.",
	},
	{
		Name: "Staff Canteen", Type: "Cafeteria", Address: "Near Admin Block",
		Tags:        "lunch,cheap,roti,daal,faculty",
		Description: "Budget friendly lunch. The Daal Chawal is iconic.",
	},
}

func ensurePlaces(ctx context.Context, repo *repository.PlaceRepository, users []*models.UserDoc) []*models.PlaceDoc {
	log.Println("⚡ SEMBRANDO LUGARES...")
	now := time.Now().UTC().Format(time.RFC3339)

	existing, err := repo.GetAll(ctx)
	if err != nil {
		log.Fatalf("error listando lugares: %v", err)
	}
	byName := make(map[string]*models.PlaceDoc, len(existing))
	for i := range existing {
		byName[existing[i].Name] = &existing[i]
	}

	creator := ""
	if len(users) > 0 {
		creator = users[0].ID
	}

	out := make([]*models.PlaceDoc, 0, len(botPlaces))
	for _, bp := range botPlaces {
		if p, ok := byName[bp.Name]; ok {
			out = append(out, p)
			continue
		}

		nextID, err := repo.GetNextPlaceID(ctx)
		if err != nil {
			log.Fatal(err)
		}
		p := &models.PlaceDoc{
			PlaceID:     nextID,
			Name:        bp.Name,
			Type:        bp.Type,
			Address:     bp.Address,
			Tags:        bp.Tags,
			Description: bp.Description,
			CreatorID:   creator,
			RatingStats: &models.RatingStats{},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := repo.Insert(ctx, p); err != nil {
			log.Fatalf("error insertando lugar %s: %v", bp.Name, err)
		}
		out = append(out, p)
	}
	return out
}

// ====== Actividad sintética ======

var reviewTexts = []string{
	"Worth every rupee.",
	"Decent, but the wait was long.",
	"Came back twice in the same week.",
	"Portion sizes have gone down lately.",
	"Perfect late night option.",
	"Service was slow but the food delivered.",
	"Overhyped, honestly.",
	"My go-to spot before exams.",
}

func generateActivity(
	ctx context.Context,
	reviews *service.ReviewService,
	rng *rand.Rand,
	users []*models.UserDoc,
	places []*models.PlaceDoc,
	days, perDay int,
) {
	if len(users) == 0 || len(places) == 0 {
		log.Println("sin usuarios o lugares, nada que simular")
		return
	}
	log.Printf("⚡ SIMULANDO %d días de actividad (~%d reviews/día)...", days, perDay)

	var created int
	for d := days - 1; d >= 0; d-- {
		// cantidad del día con algo de ruido (perDay ± 50%)
		n := perDay/2 + rng.Intn(perDay+1)
		for i := 0; i < n; i++ {
			u := users[rng.Intn(len(users))]
			p := pickWeighted(rng, places)

			rating := ratingFor(rng, p.Name)
			text := ""
			if rng.Float64() > starOnlyProb {
				text = reviewTexts[rng.Intn(len(reviewTexts))]
			}

			rv, err := reviews.Add(ctx, u.ID, p.PlaceID, rating, text)
			if err != nil {
				log.Printf("review fallida (%s -> %s): %v", u.Name, p.Name, err)
				continue
			}
			created++

			// repartir el timestamp dentro del día simulado
			backdate(ctx, rv.ReviewID, d, rng)
		}
	}
	log.Printf("⚡ %d reviews generadas", created)
}

// pickWeighted elige lugar según su peso de popularidad.
func pickWeighted(rng *rand.Rand, places []*models.PlaceDoc) *models.PlaceDoc {
	var total float64
	for _, p := range places {
		total += weightFor(p.Name)
	}
	x := rng.Float64() * total
	for _, p := range places {
		x -= weightFor(p.Name)
		if x <= 0 {
			return p
		}
	}
	return places[len(places)-1]
}

func weightFor(name string) float64 {
	if w, ok := popularPlaces[name]; ok {
		return w
	}
	return defaultWeight
}

// ratingFor: lugares populares tiran ratings más altos.
func ratingFor(rng *rand.Rand, name string) int {
	base := 3.0
	if w, ok := popularPlaces[name]; ok {
		base = w
	}
	r := int(base + float64(rng.Intn(3)) - 1)
	if r < 1 {
		r = 1
	}
	if r > 5 {
		r = 5
	}
	return r
}

// backdate mueve el createdAt de una review al día simulado (d días
// atrás, a una hora aleatoria).
func backdate(ctx context.Context, reviewID, daysAgo int, rng *rand.Rand) {
	day := time.Now().UTC().AddDate(0, 0, -daysAgo)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	ts := start.Add(time.Duration(rng.Intn(24*60*60)) * time.Second).UnixMilli()

	_, err := db.DB().Collection("reviews").UpdateOne(ctx,
		bson.M{"reviewId": reviewID},
		bson.M{"$set": bson.M{"createdAt": ts}},
	)
	if err != nil {
		log.Printf("error backdateando review %d: %v", reviewID, err)
	}
}
