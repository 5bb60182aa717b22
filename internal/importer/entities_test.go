package importer

import (
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/takak2166/cmsimport/internal/document"
	"github.com/takak2166/cmsimport/internal/filename"
	"github.com/takak2166/cmsimport/internal/media"
	"github.com/takak2166/cmsimport/internal/store"
	"github.com/takak2166/cmsimport/internal/store/mock_store"
)

func newTestImporter(t *testing.T, s store.Store, opts Options) *Importer {
	t.Helper()
	if opts.DefaultPassword == "" {
		opts.DefaultPassword = "secret"
	}
	im, err := New(s, opts)
	require.NoError(t, err)
	return im
}

func TestNew_EmptyPassword(t *testing.T) {
	_, err := New(nil, Options{})
	assert.Error(t, err)
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	tests := map[string]struct {
		setupMocks  func(m *mock_store.MockStore)
		wantCreated bool
		wantErr     bool
	}{
		"Existing user is returned unchanged": {
			setupMocks: func(m *mock_store.MockStore) {
				m.EXPECT().FindUserByEmail(gomock.Any(), "jane@example.com").
					Return(&store.User{Model: store.Model{ID: "u1"}, Email: "jane@example.com"}, nil)
			},
		},
		"Missing user is created with hashed password": {
			setupMocks: func(m *mock_store.MockStore) {
				m.EXPECT().FindUserByEmail(gomock.Any(), "jane@example.com").Return(nil, nil)
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *store.User) error {
					if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")); err != nil {
						return err
					}
					u.ID = "u1"
					return nil
				})
			},
			wantCreated: true,
		},
		"Storage failure": {
			setupMocks: func(m *mock_store.MockStore) {
				m.EXPECT().FindUserByEmail(gomock.Any(), "jane@example.com").Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mock_store.NewMockStore(ctrl)
			tt.setupMocks(m)

			im := newTestImporter(t, m, Options{})
			user, created, err := im.CreateUser(ctx, UserInput{Name: "Jane", Email: "jane@example.com"})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", user.ID)
			assert.Equal(t, tt.wantCreated, created)
		})
	}
}

func TestCreateTag_ConnectsCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mock_store.NewMockStore(ctrl)
	m.EXPECT().FindTagBySlug(gomock.Any(), "go").Return(nil, nil)
	m.EXPECT().CreateTag(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tag *store.Tag) error {
		require.NotNil(t, tag.CategoryID)
		assert.Equal(t, "c1", *tag.CategoryID)
		return nil
	})

	im := newTestImporter(t, m, Options{})
	_, created, err := im.CreateTag(context.Background(), TagInput{Name: "Go", Slug: "go", Category: &document.Ref{ID: "c1"}})
	require.NoError(t, err)
	assert.True(t, created)
}

func TestCreatePost_CleansContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var stored datatypes.JSON
	m := mock_store.NewMockStore(ctrl)
	m.EXPECT().FindPostBySlug(gomock.Any(), "hello").Return(nil, nil)
	m.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *store.Post) error {
		require.Len(t, p.Tags, 1)
		assert.Equal(t, "t1", p.Tags[0].ID)
		p.ID = "p1"
		stored = p.Content
		return nil
	})
	m.EXPECT().GetPost(gomock.Any(), "p1").DoAndReturn(func(_ context.Context, id string) (*store.Post, error) {
		return &store.Post{Model: store.Model{ID: id}, Slug: "hello", Content: stored}, nil
	})
	m.EXPECT().UpdatePostContent(gomock.Any(), "p1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, content datatypes.JSON) error {
		assert.JSONEq(t, `[{"type":"paragraph","children":[{"text":"Hello"}]}]`, string(content))
		return nil
	})

	im := newTestImporter(t, m, Options{})
	_, created, err := im.CreatePost(context.Background(), PostInput{
		Title: "Hello",
		Slug:  "hello",
		Content: document.Document{
			&document.Element{Type: document.BlockParagraph, Children: []document.Node{&document.Text{}}},
			&document.Element{Type: document.BlockParagraph, Children: []document.Node{&document.Text{Text: "Hello"}}},
		},
		Tags: []document.Ref{{ID: "t1"}, {ID: ""}},
	})
	require.NoError(t, err)
	assert.True(t, created)
}

func TestCreatePost_ExistingSkipsCleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mock_store.NewMockStore(ctrl)
	m.EXPECT().FindPostBySlug(gomock.Any(), "hello").Return(&store.Post{Model: store.Model{ID: "p1"}, Slug: "hello"}, nil)

	im := newTestImporter(t, m, Options{})
	post, created, err := im.CreatePost(context.Background(), PostInput{Title: "Hello", Slug: "hello"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "p1", post.ID)
}

func TestCreateImage(t *testing.T) {
	imagesDir := t.TempDir()

	f, err := os.Create(filepath.Join(imagesDir, "Photo.PNG"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 40, 30))))
	require.NoError(t, f.Close())

	t.Run("Probed from disk", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := mock_store.NewMockStore(ctrl)
		m.EXPECT().FindImageByFilename(gomock.Any(), "photo.png").Return(nil, nil)
		m.EXPECT().CreateImage(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, img *store.Image) error {
			assert.Equal(t, "photo.png", img.Filename)
			assert.Equal(t, "Photo", img.StorageID)
			assert.Equal(t, "PNG", img.Extension)
			assert.Equal(t, 40, img.Width)
			assert.Equal(t, 30, img.Height)
			assert.Positive(t, img.Filesize)
			return nil
		})

		im := newTestImporter(t, m, Options{ImagesDir: imagesDir})
		_, created, err := im.CreateImage(context.Background(), ImageInput{Type: store.ImageTypePost, Filename: "Photo.PNG"})
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("Missing file falls back to legacy size", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := mock_store.NewMockStore(ctrl)
		m.EXPECT().FindImageByFilename(gomock.Any(), "gone.jpg").Return(nil, nil)
		m.EXPECT().CreateImage(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, img *store.Image) error {
			assert.Equal(t, int64(1234), img.Filesize)
			assert.Equal(t, media.DefaultWidth, img.Width)
			assert.Equal(t, media.DefaultHeight, img.Height)
			return nil
		})

		im := newTestImporter(t, m, Options{ImagesDir: imagesDir})
		_, _, err := im.CreateImage(context.Background(), ImageInput{Type: store.ImageTypePost, Filename: "gone.jpg", LegacySize: 1234})
		require.NoError(t, err)
	})

	t.Run("Copied under a storage name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uploadDir := t.TempDir()
		var created *store.Image
		m := mock_store.NewMockStore(ctrl)
		m.EXPECT().FindImageByFilename(gomock.Any(), "photo.png").Return(nil, nil)
		m.EXPECT().CreateImage(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, img *store.Image) error {
			created = img
			return nil
		})

		im := newTestImporter(t, m, Options{ImagesDir: imagesDir, UploadDir: uploadDir})
		_, _, err := im.CreateImage(context.Background(), ImageInput{Type: store.ImageTypeDocument, Filename: "Photo.PNG"})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, "png", created.Extension)
		assert.Contains(t, created.StorageID, "photo-")
		_, err = os.Stat(filepath.Join(uploadDir, created.StorageID+"."+created.Extension))
		assert.NoError(t, err)

		stem, ext := filename.Split(created.StorageID + "." + created.Extension)
		assert.Equal(t, created.StorageID, stem)
		assert.Equal(t, "png", ext)
	})

	t.Run("No filename", func(t *testing.T) {
		im := newTestImporter(t, nil, Options{})
		_, _, err := im.CreateImage(context.Background(), ImageInput{Filename: "/"})
		assert.ErrorIs(t, err, ErrNoFilename)
	})
}
