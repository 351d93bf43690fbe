package review

import (
	"context"
	"errors"
	"testing"

	"servana/models"
	"servana/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeReviewRepo struct {
	reviews map[string]*models.Review
}

func newFakeReviewRepo(reviews ...*models.Review) *fakeReviewRepo {
	r := &fakeReviewRepo{reviews: map[string]*models.Review{}}
	for _, rev := range reviews {
		r.reviews[rev.ID] = rev
	}
	return r
}

func (r *fakeReviewRepo) GetByID(id string) (*models.Review, error) {
	return r.reviews[id], nil
}

func (r *fakeReviewRepo) List(filter bson.M, skip, limit int64) ([]models.Review, int64, error) {
	out := make([]models.Review, 0, len(r.reviews))
	for _, rev := range r.reviews {
		out = append(out, *rev)
	}
	return out, int64(len(out)), nil
}

func (r *fakeReviewRepo) Create(rev *models.Review) error {
	r.reviews[rev.ID] = rev
	return nil
}

func (r *fakeReviewRepo) Delete(id string) error {
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepo) ExistsForServiceAndUser(serviceID, userID string) (bool, error) {
	for _, rev := range r.reviews {
		if rev.ServiceID == serviceID && rev.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReviewRepo) RatingsByService(serviceID string) ([]int, error) {
	var out []int
	for _, rev := range r.reviews {
		if rev.ServiceID == serviceID {
			out = append(out, rev.Rating)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) RatingsByProvider(providerID string) ([]int, error) {
	var out []int
	for _, rev := range r.reviews {
		if rev.ProviderID == providerID {
			out = append(out, rev.Rating)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) EnsureIndexes() error { return nil }

type fakeServiceRepo struct {
	svc       *models.Service
	rating    models.RatingSummary
	ratingSet int
}

func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	if r.svc != nil && r.svc.ID == id {
		return r.svc, nil
	}
	return nil, nil
}

func (r *fakeServiceRepo) List(filter bson.M, skip, limit int64) ([]models.Service, int64, error) {
	return nil, 0, nil
}

func (r *fakeServiceRepo) Create(svc *models.Service) error            { return nil }
func (r *fakeServiceRepo) Update(svc *models.Service) error            { return nil }
func (r *fakeServiceRepo) UpdateSet(id string, updateDoc bson.M) error { return nil }
func (r *fakeServiceRepo) IncrementStats(id string, inc bson.M) error  { return nil }

func (r *fakeServiceRepo) SetRating(id string, rating models.RatingSummary) error {
	r.rating = rating
	r.ratingSet++
	return nil
}

func (r *fakeServiceRepo) EnsureIndexes() error { return nil }

type fakeProviderRatingRepo struct {
	rating    models.RatingSummary
	ratingSet int
}

func (r *fakeProviderRatingRepo) GetByID(id string) (*models.Provider, error)       { return nil, nil }
func (r *fakeProviderRatingRepo) GetByEmail(email string) (*models.Provider, error) { return nil, nil }

func (r *fakeProviderRatingRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Provider, error) {
	return nil, nil
}

func (r *fakeProviderRatingRepo) List(filter bson.M, skip, limit int64) ([]models.Provider, int64, error) {
	return nil, 0, nil
}

func (r *fakeProviderRatingRepo) Create(p *models.Provider) error             { return nil }
func (r *fakeProviderRatingRepo) Update(p *models.Provider) error             { return nil }
func (r *fakeProviderRatingRepo) UpdateSet(id string, updateDoc bson.M) error { return nil }
func (r *fakeProviderRatingRepo) IncrementStats(id string, inc bson.M) error  { return nil }

func (r *fakeProviderRatingRepo) SetRating(id string, rating models.RatingSummary) error {
	r.rating = rating
	r.ratingSet++
	return nil
}

func (r *fakeProviderRatingRepo) EnsureIndexes() error { return nil }

func reviewService(repo *fakeReviewRepo) (*DefaultReviewService, *fakeServiceRepo, *fakeProviderRatingRepo) {
	services := &fakeServiceRepo{svc: &models.Service{ID: "svc-1", ProviderID: "prov-1"}}
	providers := &fakeProviderRatingRepo{}
	return &DefaultReviewService{Repo: repo, Services: services, Providers: providers}, services, providers
}

func TestCreateReviewRejectsSecondForSamePair(t *testing.T) {
	repo := newFakeReviewRepo()
	svc, _, _ := reviewService(repo)
	ctx := context.Background()

	if _, err := svc.CreateReview(ctx, "user-1", CreateReviewRequest{ServiceID: "svc-1", Rating: 4}); err != nil {
		t.Fatalf("first review failed: %v", err)
	}

	_, err := svc.CreateReview(ctx, "user-1", CreateReviewRequest{ServiceID: "svc-1", Rating: 2})
	if err == nil {
		t.Fatal("second review for the same service and user must fail")
	}
	var apiErr *utils.APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != utils.ErrConflict {
		t.Fatalf("expected a conflict error, got %v", err)
	}
	if len(repo.reviews) != 1 {
		t.Fatalf("rejected review must not persist, have %d", len(repo.reviews))
	}

	// A different user reviewing the same service is fine.
	if _, err := svc.CreateReview(ctx, "user-2", CreateReviewRequest{ServiceID: "svc-1", Rating: 5}); err != nil {
		t.Fatalf("second user's review failed: %v", err)
	}
}

func TestCreateReviewUnknownService(t *testing.T) {
	svc, _, _ := reviewService(newFakeReviewRepo())

	_, err := svc.CreateReview(context.Background(), "user-1", CreateReviewRequest{ServiceID: "nope", Rating: 4})
	var apiErr *utils.APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != utils.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateReviewRecomputesAggregates(t *testing.T) {
	repo := newFakeReviewRepo(&models.Review{
		ID: "rev-1", UserID: "user-1", ServiceID: "svc-1", ProviderID: "prov-1", Rating: 5,
	})
	svc, services, providers := reviewService(repo)

	if _, err := svc.CreateReview(context.Background(), "user-2", CreateReviewRequest{ServiceID: "svc-1", Rating: 3}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if services.ratingSet != 1 || providers.ratingSet != 1 {
		t.Fatalf("expected one rating write per aggregate, got service=%d provider=%d",
			services.ratingSet, providers.ratingSet)
	}
	for _, r := range []models.RatingSummary{services.rating, providers.rating} {
		if r.Average != 4 || r.Count != 2 {
			t.Fatalf("expected mean 4 over 2 reviews, got %+v", r)
		}
		if r.Distribution[5] != 1 || r.Distribution[3] != 1 {
			t.Fatalf("unexpected distribution: %+v", r.Distribution)
		}
	}
}

func TestDeleteReviewRecomputesAggregates(t *testing.T) {
	repo := newFakeReviewRepo(
		&models.Review{ID: "rev-1", UserID: "user-1", ServiceID: "svc-1", ProviderID: "prov-1", Rating: 5},
		&models.Review{ID: "rev-2", UserID: "user-2", ServiceID: "svc-1", ProviderID: "prov-1", Rating: 1},
	)
	svc, services, providers := reviewService(repo)

	if err := svc.DeleteReview(context.Background(), "rev-2"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, ok := repo.reviews["rev-2"]; ok {
		t.Fatal("review must be hard-deleted")
	}
	if services.rating.Average != 5 || services.rating.Count != 1 {
		t.Fatalf("service aggregate not recomputed: %+v", services.rating)
	}
	if providers.rating.Average != 5 || providers.rating.Count != 1 {
		t.Fatalf("provider aggregate not recomputed: %+v", providers.rating)
	}
}

func TestDeleteReviewUnknown(t *testing.T) {
	svc, _, _ := reviewService(newFakeReviewRepo())

	err := svc.DeleteReview(context.Background(), "missing")
	var apiErr *utils.APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != utils.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
