package repository

import "github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"

// PlanCacheRepository mirrors a user's latest travel plan into the
// external auth provider's user-metadata blob. Best-effort cache, not
// authoritative storage: callers ignore failures.
type PlanCacheRepository interface {
	SavePlan(userID string, plan *entity.TravelPlan) error
}
