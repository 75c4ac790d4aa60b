package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type optionsBuilder struct {
	sources []*Options
	err     error
}

func newOptionsBuilder() *optionsBuilder {
	return &optionsBuilder{
		sources: make([]*Options, 0, 3),
	}
}

func (b *optionsBuilder) build() (Options, error) {
	if b.err != nil {
		return Options{}, fmt.Errorf("error occured during building options: %w", b.err)
	}

	opts := new(Options)
	for _, src := range b.sources {
		if err := mergo.Merge(opts, src); err != nil {
			return Options{}, fmt.Errorf("error merging options: %w", err)
		}
	}

	if err := opts.validate(); err != nil {
		return Options{}, err
	}
	return *opts, nil
}

func (b *optionsBuilder) withOptions(opts Options) *optionsBuilder {
	b.sources = append(b.sources, &opts)
	return b
}

func (b *optionsBuilder) withEnv() *optionsBuilder {
	envOpts := &Options{}
	if err := parseEnv(envOpts); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, envOpts)
	return b
}

func (b *optionsBuilder) withDefaults() *optionsBuilder {
	defaults := Defaults()
	b.sources = append(b.sources, &defaults)
	return b
}
