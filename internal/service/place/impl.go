package place

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/metrics"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/recommend"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/repository"
)

func (p *PlaceService) GetPlaceByID(id string) (*entity.Place, error) {
	result, err := p.placeRepository.GetByID(id)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (p *PlaceService) FindPlaces(filter entity.PlaceFilter) ([]entity.Place, error) {
	return p.placeRepository.FindByFilter(filter)
}

// Recommend materializes everything the engine needs (candidates,
// profile fallback, social context) and hands over to the pure ranking
// in internal/recommend.
func (p *PlaceService) Recommend(userID string, request *entity.RecommendationRequest) ([]recommend.RecommendedPlace, error) {
	engineReq := recommend.Request{
		Plan:  request.Plan,
		Area:  request.Area,
		Limit: request.Limit,
		Now:   time.Now(),
	}
	if engineReq.Limit <= 0 || engineReq.Limit > p.maxResults {
		engineReq.Limit = p.maxResults
	}

	area := request.Area
	var category entity.Category
	if request.Plan != nil {
		area = request.Plan.Area
		category = request.Plan.Category
	}

	if request.Plan == nil {
		if userID == "" {
			metrics.RecommendationRequests.WithLabelValues("invalid").Inc()
			return nil, fmt.Errorf("%w: no plan and no requesting user", recommend.ErrInvalidRequest)
		}
		profile, err := p.profileRepository.GetProfile(userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				metrics.RecommendationRequests.WithLabelValues("invalid").Inc()
				return nil, fmt.Errorf("%w: no plan and no stored profile", recommend.ErrInvalidRequest)
			}
			metrics.RecommendationRequests.WithLabelValues("error").Inc()
			return nil, err
		}
		engineReq.Profile = profile
	}

	candidates, err := p.placeRepository.FindByFilter(entity.PlaceFilter{
		Area:     area,
		Category: category,
	})
	if err != nil {
		metrics.RecommendationRequests.WithLabelValues("error").Inc()
		return nil, err
	}

	if userID != "" {
		social, err := p.socialContext(userID)
		if err != nil {
			// The social signal is an enhancement, not a dependency.
			p.log.Warn("skipping social bias",
				zap.String("user_id", userID), zap.Error(err))
		} else {
			engineReq.Social = social
		}
	}

	ranked, err := recommend.Recommend(engineReq, candidates)
	if err != nil {
		if errors.Is(err, recommend.ErrInvalidRequest) {
			metrics.RecommendationRequests.WithLabelValues("invalid").Inc()
		} else {
			metrics.RecommendationRequests.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	metrics.RecommendationRequests.WithLabelValues("ok").Inc()
	metrics.RecommendationResults.Observe(float64(len(ranked)))

	if request.Plan != nil && userID != "" {
		if err := p.planCache.SavePlan(userID, request.Plan); err != nil {
			p.log.Warn("failed to cache travel plan",
				zap.String("user_id", userID), zap.Error(err))
		}
	}

	return ranked, nil
}

// socialContext builds the engine's social input: trust edges for the
// requester plus the connections' prior reviews.
func (p *PlaceService) socialContext(userID string) (*recommend.SocialContext, error) {
	edges, err := p.trustRepository.EdgesFor(userID)
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return nil, nil
	}

	strengths := make(map[string]float64, len(edges))
	connections := make([]string, 0, len(edges))
	for _, edge := range edges {
		other, ok := edge.Other(userID)
		if !ok {
			continue
		}
		strengths[other] = edge.Strength
		connections = append(connections, other)
	}

	endorsements, err := p.trustRepository.EndorsementsBy(connections)
	if err != nil {
		return nil, err
	}

	byPlace := make(map[string][]entity.PlaceEndorsement)
	for _, e := range endorsements {
		byPlace[e.PlaceID] = append(byPlace[e.PlaceID], e)
	}

	return &recommend.SocialContext{
		UserID:       userID,
		Edges:        strengths,
		Endorsements: byPlace,
	}, nil
}
