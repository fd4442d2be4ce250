package otp

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// PendingRegistration is the state parked between register and activate. The
// password is bcrypt-hashed before it ever reaches the store.
type PendingRegistration struct {
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	Code         string
}

// Store parks pending registrations keyed by email until they are consumed
// or their TTL lapses. Put overwrites any prior entry for the same email.
type Store interface {
	Put(email string, reg PendingRegistration)
	Get(email string) (PendingRegistration, bool)
	Delete(email string)
}

// CacheStore is a Store backed by an in-process TTL cache.
type CacheStore struct {
	ttl   time.Duration
	cache *cache.Cache
}

// NewCacheStore creates a CacheStore whose entries expire after ttl.
func NewCacheStore(ttl time.Duration) *CacheStore {
	return &CacheStore{
		ttl:   ttl,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (s *CacheStore) Put(email string, reg PendingRegistration) {
	s.cache.Set(email, reg, s.ttl)
}

func (s *CacheStore) Get(email string) (PendingRegistration, bool) {
	v, ok := s.cache.Get(email)
	if !ok {
		return PendingRegistration{}, false
	}
	return v.(PendingRegistration), true
}

func (s *CacheStore) Delete(email string) {
	s.cache.Delete(email)
}

// GenerateCode returns a 6-digit numeric confirmation code, uniform in
// [100000, 600000).
func GenerateCode() string {
	return strconv.Itoa(100000 + rand.Intn(500000))
}
