package userdata

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Fixed pools for synthetic records. The generated value doubles as the
// canonical user-record fixture for tests and demos.
var (
	firstNames = []string{
		"James", "Mary", "John", "Patricia", "Robert",
		"Jennifer", "Michael", "Linda", "William", "Elizabeth",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones",
		"Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
	}
	emailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com"}
)

// GenerateUser builds a synthetic user record from the service random source
// and clock. The createdAt offset (up to cfg.MaxAccountAgeDays back) and the
// profile.joinDate offset (up to cfg.MaxJoinAgeDays back) are drawn
// independently, so the two dates need not agree.
func (s *Service) GenerateUser() Record {
	first := firstNames[s.intn(len(firstNames))]
	last := lastNames[s.intn(len(lastNames))]
	domain := emailDomains[s.intn(len(emailDomains))]
	username := strings.ToLower(first+last) + strconv.Itoa(100+s.intn(900))

	now := s.clock()
	createdAt := now.AddDate(0, 0, -(1 + s.intn(s.cfg.MaxAccountAgeDays)))
	joinDate := now.AddDate(0, 0, -(1 + s.intn(s.cfg.MaxJoinAgeDays)))

	// rand.Rand.Read never fails, so neither does building the id from it.
	id, _ := uuid.NewRandomFromReader(randomReader{s})

	return Record{
		"id":        id.String(),
		"username":  username,
		"email":     username + "@" + domain,
		"createdAt": createdAt.UTC().Format(time.RFC3339),
		"profile": Record{
			"firstName": first,
			"lastName":  last,
			"fullName":  first + " " + last,
			"joinDate":  joinDate.UTC().Format("2006-01-02"),
		},
	}
}
