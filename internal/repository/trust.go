package repository

import "github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"

// TrustRepository reads the social graph derived from mutual reviews.
type TrustRepository interface {
	// EdgesFor returns the trust edges touching userID.
	EdgesFor(userID string) ([]entity.TrustEdge, error)
	// EndorsementsBy returns reviews the given users left on any place,
	// star ratings normalized to [0, 1].
	EndorsementsBy(userIDs []string) ([]entity.PlaceEndorsement, error)
}
