package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Nishat-Ahmad/CRITiQUE/internal/cache"
	"github.com/Nishat-Ahmad/CRITiQUE/internal/models"
	"github.com/Nishat-Ahmad/CRITiQUE/internal/recommend"
	"github.com/Nishat-Ahmad/CRITiQUE/internal/repository"
)

const (
	DefaultK = 5
	MaxK     = 20 // por seguridad, no deja pedir 1000 lugares
)

// RecommendService arma el snapshot (places + reviews) por request y
// construye los engines puros de internal/recommend. Nada de estado
// compartido entre requests: cada llamada trabaja sobre datos frescos.
type RecommendService struct {
	places  *repository.PlaceRepository
	reviews *repository.ReviewRepository
	users   *repository.UserRepository
	recRepo *repository.RecommendationRepository
}

func NewRecommendService(
	p *repository.PlaceRepository,
	r *repository.ReviewRepository,
	u *repository.UserRepository,
	recRepo *repository.RecommendationRepository,
) *RecommendService {
	return &RecommendService{
		places:  p,
		reviews: r,
		users:   u,
		recRepo: recRepo,
	}
}

// ====== Petición de recomendaciones híbridas ======

type RecRequest struct {
	UserID  string
	K       int
	Refresh bool
}

// cacheKey incluye la versión del catálogo: cualquier escritura sobre
// places/reviews la incrementa, así jamás se sirve una recomendación
// calculada sobre datos viejos.
func cacheKey(req RecRequest, ver int64) string {
	return fmt.Sprintf("rec:v%d:user:%s:k:%d", ver, req.UserID, req.K)
}

// ====== Snapshot ======

func (s *RecommendService) snapshotPlaces(ctx context.Context) ([]recommend.Place, error) {
	docs, err := s.places.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]recommend.Place, 0, len(docs))
	for _, d := range docs {
		out = append(out, recommend.Place{
			ID:          d.PlaceID,
			Name:        d.Name,
			Type:        d.Type,
			Tags:        d.Tags,
			Description: d.Description,
		})
	}
	return out, nil
}

func (s *RecommendService) snapshotRatings(ctx context.Context) ([]recommend.Rating, error) {
	docs, err := s.reviews.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]recommend.Rating, 0, len(docs))
	for _, d := range docs {
		out = append(out, recommend.Rating{
			UserID:  d.UserID,
			PlaceID: d.PlaceID,
			Rating:  d.Rating,
		})
	}
	return out, nil
}

// ====== Recomendación híbrida para un usuario ======

// RecommendForUser: colaborativo → preferencias del usuario (cold
// start) → populares. Cachea en Redis y guarda historial en Mongo.
func (s *RecommendService) RecommendForUser(ctx context.Context, req RecRequest) ([]models.RecItem, error) {
	if req.K <= 0 {
		req.K = DefaultK
	} else if req.K > MaxK {
		req.K = MaxK
	}

	ver := cache.CatalogVersion(ctx)

	// 1) Cache Redis (solo si refresh = false)
	var cached []models.RecItem
	if !req.Refresh {
		if ok, err := cache.GetJSON(ctx, cacheKey(req, ver), &cached); err == nil && ok {
			return cached, nil
		}
	}

	// 2) Snapshot fresco
	places, err := s.snapshotPlaces(ctx)
	if err != nil {
		return nil, err
	}
	ratings, err := s.snapshotRatings(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Preferencias del usuario como señal de cold start
	var prefs []string
	if u, err := s.users.FindByID(ctx, req.UserID); err == nil && u != nil {
		prefs = u.PreferredTags
	}

	// 4) Motor híbrido
	engine := recommend.NewHybridRecommender(places, ratings)
	ids := engine.Recommend(req.UserID, prefs, req.K)

	items := make([]models.RecItem, 0, len(ids))
	for rank, id := range ids {
		items = append(items, models.RecItem{
			PlaceID: id,
			// el híbrido no reordena entre etapas: el score expuesto es
			// solo la posición invertida, para que el front pueda ordenar
			Score: float64(len(ids) - rank),
		})
	}

	// 5) Guardar historial en Mongo (no rompemos la respuesta si falla)
	if s.recRepo != nil {
		hist := &models.Recommendation{
			UserID: req.UserID,
			Algo:   "hybrid",
			Params: map[string]any{
				"k":       req.K,
				"prefs":   prefs,
				"refresh": req.Refresh,
			},
			Items:     items,
			CreatedAt: time.Now(),
		}
		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("error guardando recomendación en Mongo: %v", err)
		}
	}

	// 6) Cachear en Redis (1 hora)
	if err := cache.SetJSON(ctx, cacheKey(req, ver), items, 60*60); err != nil {
		log.Printf("error cacheando recomendación en Redis: %v", err)
	}

	return items, nil
}

// ====== "Más como este" (contenido) ======

// SimilarPlaces: lugares parecidos por metadata textual al que el
// usuario está mirando. Catálogo vacío o id desconocido => vacío.
func (s *RecommendService) SimilarPlaces(ctx context.Context, placeID, k int) ([]int, error) {
	if k <= 0 {
		k = recommend.DefaultLimit
	} else if k > MaxK {
		k = MaxK
	}

	places, err := s.snapshotPlaces(ctx)
	if err != nil {
		return nil, err
	}

	engine := recommend.NewContentRecommender(places)
	return engine.Recommend(placeID, k), nil
}

// ====== "A los que les gustó X también…" (colaborativo) ======

func (s *RecommendService) AlsoLiked(ctx context.Context, placeID, k int) ([]int, error) {
	if k <= 0 {
		k = recommend.DefaultLimit
	} else if k > MaxK {
		k = MaxK
	}

	ratings, err := s.snapshotRatings(ctx)
	if err != nil {
		return nil, err
	}

	engine := recommend.NewCollaborativeRecommender(ratings)
	return engine.SimilarItems(placeID, k), nil
}

// ====== Historial ======

func (s *RecommendService) History(ctx context.Context, userID string, limit int64) ([]models.Recommendation, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.recRepo.FindByUser(ctx, userID, limit)
}
