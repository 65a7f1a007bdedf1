package catalog

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/insiderdeals/storefront/internal/domain"
)

// BlogStore loads the read-only blog document. Nothing in the application
// mutates blog data; every load re-reads the file.
type BlogStore struct {
	path string
}

func NewBlogStore(path string) *BlogStore {
	return &BlogStore{path: path}
}

// Load returns all blog posts, newest first. Read or parse failures are
// logged and degrade to an empty list.
func (b *BlogStore) Load() []domain.BlogPost {
	data, err := os.ReadFile(b.path)
	if err != nil {
		zap.L().Error("blog document read failed", zap.String("file", b.path), zap.Error(err))
		return []domain.BlogPost{}
	}
	var posts []domain.BlogPost
	if err := json.Unmarshal(data, &posts); err != nil {
		zap.L().Error("blog document parse failed", zap.String("file", b.path), zap.Error(err))
		return []domain.BlogPost{}
	}
	sortByDate(posts)
	return posts
}

// Get finds a post by its data-supplied ID.
func (b *BlogStore) Get(id int64) (domain.BlogPost, error) {
	for _, p := range b.Load() {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.BlogPost{}, errors.Errorf("blog post %d not found", id)
}

// sortByDate orders newest first; posts with an unparsable date keep their
// document order at the end.
func sortByDate(posts []domain.BlogPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		ti, erri := posts[i].PublishedAt()
		tj, errj := posts[j].PublishedAt()
		switch {
		case erri != nil:
			return false
		case errj != nil:
			return true
		default:
			return ti.After(tj)
		}
	})
}
