package reviews

import "github.com/Mayuresh351/bookReviewSystem/internal/mongodb"

// reviewSet is the in-memory form of a book's review collection: the stored
// array kept in insertion order, indexed by user id. It relies on the
// one-review-per-user invariant already holding in the stored array.
type reviewSet struct {
	ordered []mongodb.ReviewDb
	byUser  map[string]int
}

func newReviewSet(reviewsDb []mongodb.ReviewDb) *reviewSet {
	set := &reviewSet{
		ordered: append([]mongodb.ReviewDb(nil), reviewsDb...),
		byUser:  make(map[string]int, len(reviewsDb)),
	}
	for i, review := range set.ordered {
		set.byUser[review.UserId] = i
	}
	return set
}

func (s *reviewSet) get(userId string) (mongodb.ReviewDb, bool) {
	i, ok := s.byUser[userId]
	if !ok {
		return mongodb.ReviewDb{}, false
	}
	return s.ordered[i], true
}

// add appends a review for a user that has none yet.
func (s *reviewSet) add(review mongodb.ReviewDb) bool {
	if _, exists := s.byUser[review.UserId]; exists {
		return false
	}
	s.byUser[review.UserId] = len(s.ordered)
	s.ordered = append(s.ordered, review)
	return true
}

// replace swaps the user's review in place, keeping its position in the order.
func (s *reviewSet) replace(review mongodb.ReviewDb) bool {
	i, ok := s.byUser[review.UserId]
	if !ok {
		return false
	}
	s.ordered[i] = review
	return true
}

func (s *reviewSet) remove(userId string) (mongodb.ReviewDb, bool) {
	i, ok := s.byUser[userId]
	if !ok {
		return mongodb.ReviewDb{}, false
	}

	removed := s.ordered[i]
	s.ordered = append(s.ordered[:i], s.ordered[i+1:]...)
	delete(s.byUser, userId)
	for j := i; j < len(s.ordered); j++ {
		s.byUser[s.ordered[j].UserId] = j
	}
	return removed, true
}

// serialize returns the collection in the storage layout, insertion order intact.
func (s *reviewSet) serialize() []mongodb.ReviewDb {
	return append([]mongodb.ReviewDb(nil), s.ordered...)
}

func (s *reviewSet) len() int {
	return len(s.ordered)
}
