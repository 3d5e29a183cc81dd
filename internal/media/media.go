package media

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound indicates no blob exists under the given id.
var ErrNotFound = errors.New("media not found")

// Blob est la référence opaque que le reste de l'application transporte.
// Les octets eux-mêmes restent dans le store.
type Blob struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// Store garde les images uploadées en mémoire, le temps de la session du
// process. Équivalent serveur d'un object URL temporaire: aucun octet
// n'est écrit sur disque ni envoyé à un service externe.
type Store struct {
	mu    sync.RWMutex
	blobs map[string]blob

	newID func() string
}

type blob struct {
	ref  Blob
	data []byte
}

func NewStore() *Store {
	return &Store{
		blobs: make(map[string]blob),
		newID: uuid.NewString,
	}
}

// Put enregistre les octets et retourne la référence servie sous /media/{id}.
func (s *Store) Put(data []byte, contentType string) (Blob, error) {
	if len(data) == 0 {
		return Blob{}, errors.New("empty media payload")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	ref := Blob{
		ID:          id,
		URL:         fmt.Sprintf("/media/%s", id),
		ContentType: contentType,
		Size:        int64(len(data)),
	}
	s.blobs[id] = blob{ref: ref, data: data}

	return ref, nil
}

// Get retourne la référence et les octets du blob.
func (s *Store) Get(id string) (Blob, []byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.blobs[id]
	if !ok {
		return Blob{}, nil, ErrNotFound
	}
	return b.ref, b.data, nil
}
