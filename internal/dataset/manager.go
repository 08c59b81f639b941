package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"wastewatch.io/internal/analysis"
	"wastewatch.io/internal/models"
	"wastewatch.io/wastedb"
)

// refreshInterval is how often a remote dataset source is re-downloaded.
const refreshInterval = 24 * time.Hour

// Manager owns the cleaned dataset and derived analysis results, and keeps
// them fresh when the source is remote. All accessors are safe for
// concurrent use.
type Manager struct {
	dataSource  string
	isLocalFile bool
	config      Config
	logger      *slog.Logger
	WasteDB     *wastedb.Client

	mu          sync.RWMutex
	countries   []models.Country
	byID        map[string]int
	summary     models.SummaryStats
	clusterData models.ClusterData
	warnings    []string
	lastUpdated time.Time

	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// InitManager loads the dataset from the configured source, runs the
// analysis pipeline, and persists the cleaned rows. Remote sources are
// refreshed on a daily schedule until Shutdown is called.
func InitManager(config Config, logger *slog.Logger) (*Manager, error) {
	isLocalFile := !strings.HasPrefix(config.DataSource, "http://") &&
		!strings.HasPrefix(config.DataSource, "https://")

	if config.ClusterCount == 0 {
		config.ClusterCount = analysis.DefaultClusterCount
	}

	manager := &Manager{
		dataSource:   config.DataSource,
		isLocalFile:  isLocalFile,
		config:       config,
		logger:       logger,
		shutdownChan: make(chan struct{}),
	}

	dbClient, err := wastedb.NewClient(wastedb.NewConfig(config.DBPath, config.Env, config.Verbose), logger)
	if err != nil {
		return nil, fmt.Errorf("error building waste database: %w", err)
	}
	manager.WasteDB = dbClient

	result, err := loadDataset(config.DataSource, isLocalFile)
	if err != nil {
		_ = dbClient.Close()
		return nil, err
	}
	if err := manager.applyDataset(result); err != nil {
		_ = dbClient.Close()
		return nil, err
	}

	if !isLocalFile {
		manager.wg.Add(1)
		go manager.refreshPeriodically()
	}

	return manager, nil
}

// Shutdown gracefully shuts down the manager and its background goroutines
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
		if manager.WasteDB != nil {
			_ = manager.WasteDB.Close()
		}
	})
}

// applyDataset runs the analysis pipeline over a cleaned load result,
// persists the rows, and swaps the in-memory state.
func (manager *Manager) applyDataset(result *loadResult) error {
	now := time.Now()

	summary := analysis.Summarize(result.Metrics)
	summary.RowsDropped = result.RowsDropped
	summary.LastUpdated = now.UnixMilli()

	warnings := result.Warnings
	clusterData := models.ClusterData{
		K:        manager.config.ClusterCount,
		Features: analysis.FeatureNames,
	}
	labels := map[string]int{}

	clusterResult, err := analysis.ClusterCountries(result.Metrics, manager.config.ClusterCount)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("clustering skipped: %v", err))
		manager.logger.Warn("clustering skipped", slog.String("error", err.Error()))
	} else {
		clusterData.K = clusterResult.K
		clusterData.Clusters = clusterResult.Summaries
		labels = clusterResult.Labels
	}

	countries := make([]models.Country, len(result.Countries))
	byID := make(map[string]int, len(result.Countries))
	for i, country := range result.Countries {
		if label, ok := labels[country.ID]; ok {
			country.Cluster = label
		}
		countries[i] = country
		byID[country.ID] = i
	}

	ctx := context.Background()
	if err := manager.WasteDB.ReplaceDataset(ctx, dbCountries(countries)); err != nil {
		return fmt.Errorf("error persisting dataset: %w", err)
	}

	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.countries = countries
	manager.byID = byID
	manager.summary = summary
	manager.clusterData = clusterData
	manager.warnings = warnings
	manager.lastUpdated = now

	return nil
}

// refreshPeriodically re-downloads a remote dataset on a fixed schedule.
// A failed refresh keeps the previous dataset in place.
func (manager *Manager) refreshPeriodically() {
	defer manager.wg.Done()

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			result, err := loadDataset(manager.dataSource, false)
			if err != nil {
				manager.logger.Error("error refreshing dataset", slog.String("error", err.Error()))
				continue
			}
			if err := manager.applyDataset(result); err != nil {
				manager.logger.Error("error applying refreshed dataset", slog.String("error", err.Error()))
				continue
			}
			manager.logger.Info("dataset refreshed", slog.String("source", manager.dataSource))
		case <-manager.shutdownChan:
			manager.logger.Info("shutting down dataset refresh")
			return
		}
	}
}

// GetCountries returns the cleaned countries ordered by name.
func (manager *Manager) GetCountries() []models.Country {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	countries := make([]models.Country, len(manager.countries))
	copy(countries, manager.countries)
	sort.Slice(countries, func(i, j int) bool {
		return countries[i].Name < countries[j].Name
	})
	return countries
}

// FindCountry looks up one country by its ID. It returns nil when the ID is
// unknown.
func (manager *Manager) FindCountry(id string) *models.Country {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	i, ok := manager.byID[id]
	if !ok {
		return nil
	}
	country := manager.countries[i]
	return &country
}

// Regions returns the distinct region names present in the dataset, sorted.
func (manager *Manager) Regions() []string {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	seen := map[string]bool{}
	var regions []string
	for _, country := range manager.countries {
		if country.Region == "" || seen[country.Region] {
			continue
		}
		seen[country.Region] = true
		regions = append(regions, country.Region)
	}
	sort.Strings(regions)
	return regions
}

// Rankings returns the top countries by combined waste. Order is "highest"
// or "lowest"; limit caps the number of entries.
func (manager *Manager) Rankings(order string, limit int) []models.RankingEntry {
	manager.mu.RLock()
	sorted := make([]models.Country, len(manager.countries))
	copy(sorted, manager.countries)
	manager.mu.RUnlock()

	sort.Slice(sorted, func(i, j int) bool {
		if order == "lowest" {
			return sorted[i].CombinedKgPerCapita < sorted[j].CombinedKgPerCapita
		}
		return sorted[i].CombinedKgPerCapita > sorted[j].CombinedKgPerCapita
	})

	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}

	rankings := make([]models.RankingEntry, len(sorted))
	for i, country := range sorted {
		rankings[i] = models.RankingEntry{
			Rank:                i + 1,
			CountryID:           country.ID,
			Name:                country.Name,
			Region:              country.Region,
			CombinedKgPerCapita: country.CombinedKgPerCapita,
		}
	}
	return rankings
}

// Summary returns the dataset-wide summary statistics.
func (manager *Manager) Summary() models.SummaryStats {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.summary
}

// Clusters returns the latest clustering result.
func (manager *Manager) Clusters() models.ClusterData {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.clusterData
}

// SectorBreakdown computes the per-sector waste distribution for one
// country. Sectors without an estimate are omitted; shares are relative to
// the sum of the present sector estimates.
func (manager *Manager) SectorBreakdown(id string) *models.SectorBreakdown {
	country := manager.FindCountry(id)
	if country == nil {
		return nil
	}

	type sector struct {
		name   string
		kg     *float64
		tonnes *float64
	}
	sectors := []sector{
		{"household", country.HouseholdKgPerCapita, country.HouseholdTonnes},
		{"retail", country.RetailKgPerCapita, country.RetailTonnes},
		{"foodService", country.FoodServiceKgPerCapita, country.FoodServiceTonnes},
	}

	var total float64
	for _, s := range sectors {
		if s.kg != nil {
			total += *s.kg
		}
	}

	breakdown := &models.SectorBreakdown{CountryID: country.ID}
	for _, s := range sectors {
		if s.kg == nil {
			continue
		}
		var share float64
		if total > 0 {
			share = *s.kg / total
		}
		breakdown.Sectors = append(breakdown.Sectors, models.SectorEntry{
			Sector:       s.name,
			KgPerCapita:  *s.kg,
			TotalTonnes:  s.tonnes,
			ShareOfTotal: share,
		})
	}
	return breakdown
}

// Warnings returns the data-quality warnings from the most recent load.
func (manager *Manager) Warnings() []string {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	warnings := make([]string, len(manager.warnings))
	copy(warnings, manager.warnings)
	return warnings
}

// LastUpdated reports when the dataset was last loaded or refreshed.
func (manager *Manager) LastUpdated() time.Time {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.lastUpdated
}

// LogStatistics writes a one-line overview of the loaded dataset.
func (manager *Manager) LogStatistics() {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	manager.logger.Info("dataset loaded",
		slog.String("source", manager.dataSource),
		slog.Bool("localFile", manager.isLocalFile),
		slog.Int("countries", len(manager.countries)),
		slog.Int("rowsDropped", manager.summary.RowsDropped),
		slog.Int("warnings", len(manager.warnings)),
		slog.Int("clusters", len(manager.clusterData.Clusters)),
	)
}

func dbCountries(countries []models.Country) []wastedb.Country {
	rows := make([]wastedb.Country, len(countries))
	for i, c := range countries {
		rows[i] = wastedb.Country{
			ID:                  c.ID,
			Name:                c.Name,
			Region:              c.Region,
			Confidence:          c.Confidence,
			CombinedKgPerCapita: c.CombinedKgPerCapita,
			HouseholdKgPerCap:   nullFromPtr(c.HouseholdKgPerCapita),
			RetailKgPerCap:      nullFromPtr(c.RetailKgPerCapita),
			FoodServiceKgPerCap: nullFromPtr(c.FoodServiceKgPerCapita),
			HouseholdTonnes:     nullFromPtr(c.HouseholdTonnes),
			RetailTonnes:        nullFromPtr(c.RetailTonnes),
			FoodServiceTonnes:   nullFromPtr(c.FoodServiceTonnes),
			Cluster:             int64(c.Cluster),
		}
	}
	return rows
}

func nullFromPtr(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
