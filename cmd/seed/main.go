package main

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"nyaay-saathi/internal/legaldata"
	"nyaay-saathi/internal/models"
	"nyaay-saathi/internal/repository"
	"nyaay-saathi/internal/service"
	"nyaay-saathi/pkg/auth"
	"nyaay-saathi/pkg/config"
	"nyaay-saathi/pkg/logger"
	"nyaay-saathi/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()

	appLogger.Info("Starting seeding...")

	seedDir := filepath.Join("cmd", "seed", "data")
	cacheFile := filepath.Join("cmd", "seed", ".seed_cache.json")
	if err := seedKnowledgeBase(cfg.Storage.KnowledgeBaseFile, seedDir, cacheFile, appLogger); err != nil {
		appLogger.Fatal("Failed to seed knowledge base", zap.Error(err))
	}

	userRepo, closeRepo, err := openUserRepository(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open user store", zap.Error(err))
	}
	defer closeRepo()

	authService := service.NewAuthService(userRepo, auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration), appLogger)
	created, err := authService.EnsureDemoAccount(ctx)
	if err != nil {
		appLogger.Fatal("Failed to create demo account", zap.Error(err))
	}
	if !created {
		appLogger.Info("Demo account already exists", zap.String("email", service.DemoEmail))
	}

	appLogger.Info("Seeding completed successfully!")
}

func openUserRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.UserRepository, func(), error) {
	if cfg.Storage.UserStore != config.UserStorePostgres {
		return repository.NewJSONUserRepository(cfg.Storage.UserDBFile, logger), func() {}, nil
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, nil, err
	}
	repo := repository.NewPostgresUserRepository(db, logger)
	if err := repo.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return repo, db.Close, nil
}

// ProcessedFile represents an imported seed file in cache
type ProcessedFile struct {
	FilePath    string    `json:"file_path"`
	FileHash    string    `json:"file_hash"`
	ProcessedAt time.Time `json:"processed_at"`
}

// CacheData stores information about imported files
type CacheData struct {
	ProcessedFiles map[string]ProcessedFile `json:"processed_files"` // key: file path
}

func loadCache(cacheFile string) (*CacheData, error) {
	cache := &CacheData{
		ProcessedFiles: make(map[string]ProcessedFile),
	}

	data, err := os.ReadFile(cacheFile)
	if os.IsNotExist(err) {
		return cache, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	if len(data) == 0 {
		return cache, nil
	}

	if err := json.Unmarshal(data, cache); err != nil {
		return nil, fmt.Errorf("failed to parse cache file: %w", err)
	}

	return cache, nil
}

func saveCache(cacheFile string, cache *CacheData) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.WriteFile(cacheFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	return nil
}

// calculateFileHash calculates MD5 hash of a file
func calculateFileHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to calculate hash: %w", err)
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

// seedKnowledgeBase makes sure the knowledge base file exists, then merges in
// Q/A pairs from every *.json file under seedDir that changed since the last run.
func seedKnowledgeBase(kbPath, seedDir, cacheFile string, logger *zap.Logger) error {
	pairs, created, err := legaldata.LoadKnowledgeBase(kbPath)
	if err != nil {
		return err
	}
	if created {
		logger.Info("Knowledge base file created with built-in entries",
			zap.String("path", kbPath),
			zap.Int("entries", len(pairs)),
		)
	}

	files, err := filepath.Glob(filepath.Join(seedDir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to list seed files: %w", err)
	}
	if len(files) == 0 {
		logger.Info("No seed files found", zap.String("dir", seedDir))
		return nil
	}
	sort.Strings(files)

	cache, err := loadCache(cacheFile)
	if err != nil {
		logger.Warn("Failed to load cache, will import all files", zap.Error(err))
		cache = &CacheData{ProcessedFiles: make(map[string]ProcessedFile)}
	}

	now := time.Now()
	total := 0
	for _, path := range files {
		fileHash, err := calculateFileHash(path)
		if err != nil {
			logger.Warn("Failed to calculate file hash, will import anyway", zap.String("path", path), zap.Error(err))
		}

		if cached, exists := cache.ProcessedFiles[path]; exists && cached.FileHash == fileHash {
			logger.Info("Seed file already imported, skipping",
				zap.String("path", path),
				zap.Time("processed_at", cached.ProcessedAt),
			)
			continue
		}

		extra, err := readSeedFile(path)
		if err != nil {
			logger.Error("Failed to read seed file", zap.String("path", path), zap.Error(err))
			continue
		}

		var added int
		pairs, added = legaldata.MergeQAPairs(pairs, extra)
		total += added
		logger.Info("Imported seed file",
			zap.String("path", path),
			zap.Int("entries", len(extra)),
			zap.Int("added", added),
		)

		cache.ProcessedFiles[path] = ProcessedFile{
			FilePath:    path,
			FileHash:    fileHash,
			ProcessedAt: now,
		}
	}

	if total > 0 {
		if err := legaldata.WriteKnowledgeBase(kbPath, pairs); err != nil {
			return err
		}
		logger.Info("Knowledge base updated", zap.Int("added", total), zap.Int("entries", len(pairs)))
	}

	if err := saveCache(cacheFile, cache); err != nil {
		logger.Warn("Failed to save cache", zap.Error(err))
	}

	return nil
}

func readSeedFile(path string) ([]models.QAEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var kb models.KnowledgeBase
	if err := json.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return kb.QAPairs, nil
}
