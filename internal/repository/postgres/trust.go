package postgres

import (
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
)

// Trust edges are derived, not stored: two users are connected when
// they have reviewed the same places, and the edge strength saturates
// with the number of mutually reviewed places.
//
//	strength = mutual / (mutual + 2)
//
// so one shared place gives 0.33 and five give 0.71, never reaching 1.
const trustSaturation = 2.0

func (r *RepoDatabase) EdgesFor(userID string) ([]entity.TrustEdge, error) {
	type mutualRow struct {
		Other  string
		Mutual int
	}

	var rows []mutualRow
	err := r.DB.Raw(`
		SELECT o.user_id AS other, COUNT(DISTINCT o.place_id) AS mutual
		FROM reviews mine
		JOIN reviews o ON o.place_id = mine.place_id AND o.user_id <> mine.user_id
		WHERE mine.user_id = ?
		GROUP BY o.user_id`, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	edges := make([]entity.TrustEdge, 0, len(rows))
	for _, row := range rows {
		a, b := userID, row.Other
		if b < a {
			a, b = b, a
		}
		edges = append(edges, entity.TrustEdge{
			UserA:    a,
			UserB:    b,
			Strength: float64(row.Mutual) / (float64(row.Mutual) + trustSaturation),
		})
	}
	return edges, nil
}

func (r *RepoDatabase) EndorsementsBy(userIDs []string) ([]entity.PlaceEndorsement, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var rows []reviewRow
	err := r.DB.Where("user_id IN ?", userIDs).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	endorsements := make([]entity.PlaceEndorsement, len(rows))
	for i, row := range rows {
		endorsements[i] = entity.PlaceEndorsement{
			UserID:  row.UserID,
			PlaceID: row.PlaceID,
			Rating:  float64(row.Stars) / 5.0,
		}
	}
	return endorsements, nil
}
