package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/emrzvv/evo-research/internal/model"
	"github.com/emrzvv/evo-research/internal/stats"
)

func writeIslandsCfgToCSV(islands []*model.Island, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	_ = w.Write([]string{"id", "sigma", "population"})
	for _, isl := range islands {
		w.Write([]string{
			fmt.Sprintf("%d", isl.ID),
			fmt.Sprintf("%.5f", isl.Sigma),
			fmt.Sprintf("%d", len(isl.Pop)),
		})
	}
	w.Flush()
	return w.Error()
}

func writeSummaryToCSV(st *stats.Statistics, islands []*model.Island, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	_ = w.Write([]string{"id", "generations", "immigrants", "best_fitness"})
	for i, isl := range islands {
		w.Write([]string{
			fmt.Sprintf("%d", isl.ID),
			fmt.Sprintf("%d", st.Generations[i]),
			fmt.Sprintf("%d", isl.Immigrants),
			fmt.Sprintf("%.8f", isl.BestFitness()),
		})
	}
	w.Flush()
	return w.Error()
}

func writeSnapshotsToCSV(islands []*model.Island, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	wr := csv.NewWriter(f)
	_ = wr.Write([]string{"time_s", "island_id", "best_fitness", "generations"})

	for _, isl := range islands {
		for _, snap := range isl.Snapshots {
			wr.Write([]string{
				fmt.Sprintf("%.5f", snap.T),
				fmt.Sprintf("%d", isl.ID),
				fmt.Sprintf("%.8f", snap.Best),
				fmt.Sprintf("%d", snap.Gens),
			})
		}
	}
	wr.Flush()
	return wr.Error()
}

func writeEventsToCSV(st *stats.Statistics, improvementsPath, migrationsPath string) error {
	fi, err := os.Create(improvementsPath)
	if err != nil {
		return err
	}
	iw := csv.NewWriter(fi)
	_ = iw.Write([]string{"time_s", "island_id", "fitness"})
	for _, event := range st.Improvements {
		iw.Write([]string{
			fmt.Sprintf("%.5f", event.T),
			fmt.Sprintf("%d", event.IslandID),
			fmt.Sprintf("%.8f", event.Fitness),
		})
	}
	iw.Flush()
	if err := iw.Error(); err != nil {
		return err
	}
	fi.Close()

	fm, err := os.Create(migrationsPath)
	if err != nil {
		return err
	}
	mw := csv.NewWriter(fm)
	_ = mw.Write([]string{"time_s", "from_id", "to_id", "fitness", "accepted"})
	for _, event := range st.Migrations {
		mw.Write([]string{
			fmt.Sprintf("%.5f", event.T),
			fmt.Sprintf("%d", event.FromID),
			fmt.Sprintf("%d", event.ToID),
			fmt.Sprintf("%.8f", event.Fitness),
			fmt.Sprintf("%t", event.Accepted),
		})
	}
	mw.Flush()
	fm.Close()
	return mw.Error()
}

func ToCSV(dir string, statistics *stats.Statistics, islands []*model.Island) error {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return err
	}
	if strings.HasSuffix(dir, "/") {
		dir = dir[:len(dir)-1]
	}
	err = writeIslandsCfgToCSV(islands, fmt.Sprintf("%s/islands.csv", dir))
	if err != nil {
		return err
	}
	err = writeSummaryToCSV(statistics, islands, fmt.Sprintf("%s/summary.csv", dir))
	if err != nil {
		return err
	}
	err = writeSnapshotsToCSV(islands, fmt.Sprintf("%s/snapshots.csv", dir))
	if err != nil {
		return err
	}
	err = writeEventsToCSV(statistics,
		fmt.Sprintf("%s/improvements.csv", dir),
		fmt.Sprintf("%s/migrations.csv", dir))
	if err != nil {
		return err
	}
	return nil
}
