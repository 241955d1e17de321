// Package config provides configuration structures and utilities for the
// photo watermark tool. It defines the render parameters, batch options,
// report preferences, and the optional YAML configuration file.
package config
