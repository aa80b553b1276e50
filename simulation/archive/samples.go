// Copyright 2025 rzaliznyak-math
// This file is part of the random simulation toolkit.
//
// The toolkit is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The toolkit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the toolkit. If not, see <http://www.gnu.org/licenses/>.

// Package archive persists drawn sample sets as gzip-compressed binary
// files so expensive runs can be re-evaluated without redrawing.
package archive

import (
	"errors"
	"fmt"
	"math"

	"github.com/rzaliznyak-math/random/simulation"
)

const (
	// sampleMagic marks the first two bytes of every sample archive.
	sampleMagic = uint16(0x5253)
	// sampleVersion is the binary layout version written after the magic.
	sampleVersion = uint8(1)
)

// SampleFile holds the decoded content of a sample archive.
type SampleFile struct {
	Trial   simulation.Trial     // trial the samples were drawn from
	Seed    uint64               // random seed of the run
	Samples simulation.SampleSet // drawn samples in draw order
}

// WriteSampleFile stores a drawn sample set together with its trial and
// random seed in a gzip-compressed binary file.
func WriteSampleFile(filename string, t simulation.Trial, seed uint64, samples simulation.SampleSet) (err error) {
	if err = t.Check(); err != nil {
		return err
	}
	if err = samples.Check(t); err != nil {
		return err
	}
	writer, err := NewFileWriter(filename)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, writer.Close())
	}()
	return writeSamples(writer, t, seed, samples)
}

// ReadSampleFile loads a sample archive written by WriteSampleFile.
func ReadSampleFile(filename string) (sf *SampleFile, err error) {
	reader, err := NewFileReader(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, reader.Close())
	}()
	return readSamples(reader, filename)
}

// writeSamples encodes the archive layout: magic, version, visitors,
// the success rate as IEEE 754 bits, the seed, the sample count and the
// samples themselves, all fixed-width big-endian.
func writeSamples(w FileWriter, t simulation.Trial, seed uint64, samples simulation.SampleSet) error {
	if err := w.WriteUint16(sampleMagic); err != nil {
		return err
	}
	if err := w.WriteUint8(sampleVersion); err != nil {
		return err
	}
	if err := w.WriteUint64(uint64(t.Visitors)); err != nil {
		return err
	}
	if err := w.WriteUint64(math.Float64bits(t.Rate)); err != nil {
		return err
	}
	if err := w.WriteUint64(seed); err != nil {
		return err
	}
	if err := w.WriteUint64(uint64(len(samples))); err != nil {
		return err
	}
	for _, s := range samples {
		if err := w.WriteUint64(uint64(s)); err != nil {
			return err
		}
	}
	return nil
}

func readSamples(r FileReader, filename string) (*SampleFile, error) {
	magic, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	if magic != sampleMagic {
		return nil, fmt.Errorf("file %v is not a sample archive", filename)
	}
	version, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	if version != sampleVersion {
		return nil, fmt.Errorf("unsupported sample archive version %d", version)
	}
	visitors, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	rateBits, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	seed, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	count, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	trial, err := simulation.NewTrial(int64(visitors), math.Float64frombits(rateBits))
	if err != nil {
		return nil, fmt.Errorf("sample archive %v holds an invalid trial; %v", filename, err)
	}
	samples := make(simulation.SampleSet, count)
	for i := range samples {
		u, err := r.ReadUint64()
		if err != nil {
			return nil, err
		}
		samples[i] = int64(u)
	}
	if err := samples.Check(trial); err != nil {
		return nil, fmt.Errorf("sample archive %v holds invalid samples; %v", filename, err)
	}
	return &SampleFile{Trial: trial, Seed: seed, Samples: samples}, nil
}
