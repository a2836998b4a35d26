package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/edaniels/golog"
	"github.com/fogleman/gg"
	"go.uber.org/multierr"

	"go.viam.com/sfm/feature"
	"go.viam.com/sfm/feature/matching"
)

func main() {
	features1Ptr := flag.String("features1", "", "path to the text file with the features of the first image")
	features2Ptr := flag.String("features2", "", "path to the text file with the features of the second image")
	configPtr := flag.String("config", "", "path to a json file with matching options")
	outPtr := flag.String("out", "", "path of the text file the matches are written to")
	plotPtr := flag.String("plot", "", "path of a png visualizing the matches, needs img1 and img2")
	img1Ptr := flag.String("img1", "", "path to the first image, only used for plotting")
	img2Ptr := flag.String("img2", "", "path to the second image, only used for plotting")
	flag.Parse()
	logger := golog.NewLogger("match_features")
	match(*features1Ptr, *features2Ptr, *configPtr, *outPtr, *plotPtr, *img1Ptr, *img2Ptr, logger)
	os.Exit(0)
}

func match(features1Path, features2Path, configPath, outPath, plotPath, img1Path, img2Path string, logger golog.Logger) {
	opts := matching.NewOptions()
	if configPath != "" {
		var err error
		opts, err = matching.LoadOptions(configPath)
		if err != nil {
			logger.Fatal(err)
		}
	}

	kps1, descs1, err := feature.LoadFeaturesFromFile(features1Path)
	if err != nil {
		logger.Fatal(err)
	}
	kps2, descs2, err := feature.LoadFeaturesFromFile(features2Path)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infof("loaded %d and %d features", len(kps1), len(kps2))

	matches, err := matching.MatchDescriptors(descs1, descs2, opts, logger)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infof("found %d matches", len(matches))

	if outPath != "" {
		if err := writeMatches(outPath, matches); err != nil {
			logger.Fatal(err)
		}
	} else {
		for _, m := range matches {
			logger.Infof("%d %d", m.Idx1, m.Idx2)
		}
	}

	if plotPath != "" {
		img1, err := gg.LoadImage(img1Path)
		if err != nil {
			logger.Fatal(err)
		}
		img2, err := gg.LoadImage(img2Path)
		if err != nil {
			logger.Fatal(err)
		}
		if err := matching.PlotMatches(img1, img2, kps1, kps2, matches, plotPath); err != nil {
			logger.Fatal(err)
		}
		logger.Infof("saved plot to %s", plotPath)
	}
}

// writeMatches writes one match per line as a pair of feature indices.
func writeMatches(path string, matches feature.Matches) (err error) {
	matchesFile, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, matchesFile.Close())
	}()
	w := bufio.NewWriter(matchesFile)
	for _, m := range matches {
		if _, err := fmt.Fprintf(w, "%d %d\n", m.Idx1, m.Idx2); err != nil {
			return err
		}
	}
	return w.Flush()
}
