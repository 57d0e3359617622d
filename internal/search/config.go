package search

type Config struct {
	K            string  `envconfig:"SIFT_SEARCH_K" default:"3-10" toml:"k"`
	Algo         string  `envconfig:"SIFT_SEARCH_ALGO" default:"euclidean" toml:"algo"`
	TestFraction float64 `envconfig:"SIFT_SEARCH_TEST_FRACTION" default:"0.25" toml:"test_fraction"`
	TopResults   int     `envconfig:"SIFT_SEARCH_TOP_RESULTS" default:"5" toml:"top_results"`
}
