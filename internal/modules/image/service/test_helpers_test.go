package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"sort"
	"sync"
	"testing"
	"time"

	"image-board/internal/exifmeta"
	"image-board/internal/model"
	"image-board/internal/modules/image/repo"
	settingsrepo "image-board/internal/modules/settings/repo"
	platformservice "image-board/internal/platform/service"
	"image-board/internal/storage"
	"image-board/internal/testutils"

	"gorm.io/gorm"
)

// memoryProvider 内存存储，可注入写入失败
type memoryProvider struct {
	mu      sync.Mutex
	objects map[string][]byte
	failPut bool
}

func newMemoryProvider() *memoryProvider {
	return &memoryProvider{objects: map[string][]byte{}}
}

func (m *memoryProvider) Put(_ context.Context, key string, body io.ReadSeeker, _ string) error {
	if m.failPut {
		return errors.New("disk full")
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return nil
}

func (m *memoryProvider) Get(_ context.Context, key string) (*storage.FileObject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[key]
	if !ok {
		return nil, os.ErrNotExist
	}
	return &storage.FileObject{Body: io.NopCloser(bytes.NewReader(data)), ContentLength: int64(len(data))}, nil
}

func (m *memoryProvider) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *memoryProvider) List(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *memoryProvider) URL(key string) string {
	return "/imgs/" + key
}

func (m *memoryProvider) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok
}

func (m *memoryProvider) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// stubExtractor 返回固定的元数据或错误
type stubExtractor struct {
	md  *exifmeta.Metadata
	err error
}

func (s stubExtractor) Extract(io.Reader) (*exifmeta.Metadata, error) {
	return s.md, s.err
}

// failingCreateStore 创建图片记录总是失败
type failingCreateStore struct {
	repo.ImageStore
}

func (failingCreateStore) Create(*model.Image) error {
	return errors.New("insert failed")
}

type testEnv struct {
	svc      *Service
	db       *gorm.DB
	storage  *memoryProvider
	settings *platformservice.AppService
}

func setupTestEnv(t *testing.T, extractor exifmeta.Extractor) *testEnv {
	t.Helper()
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	if err := appService.InitializeSettings(); err != nil {
		t.Fatalf("InitializeSettings: %v", err)
	}
	if extractor == nil {
		extractor = stubExtractor{err: errors.New("no exif")}
	}
	provider := newMemoryProvider()
	return &testEnv{
		svc:      New(appService, repo.NewImageRepository(gdb), provider, extractor),
		db:       gdb,
		storage:  provider,
		settings: appService,
	}
}

func (e *testEnv) setSetting(t *testing.T, key, value string) {
	t.Helper()
	if err := e.db.Model(&model.Setting{Key: key}).Update("value", value).Error; err != nil {
		t.Fatalf("更新配置失败: %v", err)
	}
	e.settings.ClearCache()
}

func createUser(t *testing.T, gdb *gorm.DB, name string, level int) *model.User {
	t.Helper()
	u := &model.User{Name: name, PasswordHash: "x", Email: name + "@example.com", PrivilegeLevel: level}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return u
}

func createImageRow(t *testing.T, gdb *gorm.DB, owner *model.User, key string, postedAt time.Time) *model.Image {
	t.Helper()
	img := &model.Image{UserID: owner.ID, StorageKey: key, URL: "/imgs/" + key, PostedAt: postedAt}
	if err := gdb.Create(img).Error; err != nil {
		t.Fatalf("创建图片失败: %v", err)
	}
	return img
}

func newPNGReader(t *testing.T, width, height int) io.Reader {
	t.Helper()
	return bytes.NewReader(testutils.EncodePNG(t, width, height))
}
