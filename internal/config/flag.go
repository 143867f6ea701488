package config

import (
	"flag"
)

const defaultStoreAPIURL = "http://localhost:5000/api"

type Flags struct {
	address     string
	storeAPIURL string
	logLevel    string
}

func (flags *Flags) Init() {
	flag.StringVar(&flags.address, "a", ":8080", "Address and port to run server")

	flag.StringVar(&flags.storeAPIURL, "s", defaultStoreAPIURL, "store service API base URL")
	flag.StringVar(&flags.logLevel, "l", "info", "log level")

	flag.Parse()
}
