// Package cursor encodes keyset pagination boundaries as opaque strings.
// A cursor carries the sort key of the last row of a page; the next query
// resumes strictly after it. Cursors are stateless, so any number of
// readers can paginate concurrently.
package cursor

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Waseemalame/unwokeai/model"
)

// ErrInvalid is returned for cursors this package did not produce.
var ErrInvalid = errors.New("cursor: invalid")

// EncodeKey encodes a composite (createdAt, id) feed key.
func EncodeKey(k model.FeedKey) string {
	return encode(fmt.Sprintf("%d|%s", k.CreatedAt.UnixNano(), k.ID))
}

// DecodeKey decodes a cursor produced by EncodeKey.
func DecodeKey(s string) (model.FeedKey, error) {
	raw, err := decode(s)
	if err != nil {
		return model.FeedKey{}, err
	}
	nanos, id, ok := strings.Cut(raw, "|")
	if !ok || id == "" {
		return model.FeedKey{}, ErrInvalid
	}
	n, err := strconv.ParseInt(nanos, 10, 64)
	if err != nil {
		return model.FeedKey{}, ErrInvalid
	}
	return model.FeedKey{CreatedAt: time.Unix(0, n), ID: id}, nil
}

// EncodeEdge encodes a like-edge id.
func EncodeEdge(id int64) string {
	return encode(strconv.FormatInt(id, 10))
}

// DecodeEdge decodes a cursor produced by EncodeEdge.
func DecodeEdge(s string) (int64, error) {
	raw, err := decode(s)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalid
	}
	return id, nil
}

func encode(raw string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func decode(s string) (string, error) {
	if s == "" {
		return "", ErrInvalid
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return "", ErrInvalid
	}
	return string(b), nil
}
