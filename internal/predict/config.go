package predict

type Config struct {
	K    string `envconfig:"SIFT_PREDICT_K" default:"3" toml:"k"`
	Algo string `envconfig:"SIFT_PREDICT_ALGO" default:"euclidean" toml:"algo"`
}
