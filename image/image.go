// This file is part of basm - https://github.com/basmlang/basm
//
// Copyright 2026 The basm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package image writes a translated program out as the fixed binary layout
// spec.md 4.H and 6 define: a packed header, the populated prefix of the
// program array, then the populated prefix of the memory buffer. There is no
// padding and no endianness metadata -- every field is written and read
// little-endian (ByteOrder), whatever the host's own byte order.
package image

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/basmlang/basm/internal/bio"
	"github.com/basmlang/basm/translate"
)

// Header is the fixed-size record written before the program and memory
// segments. Field order matches the wire layout exactly; no field may be
// reordered or resized without breaking existing images.
type Header struct {
	Magic          uint32
	Version        uint16
	Entry          uint64
	ProgramSize    uint64
	MemorySize     uint64
	MemoryCapacity uint64
}

// ByteOrder is the byte order images are written and read in: little-endian
// on every host.
var ByteOrder = binary.LittleEndian

// Write serializes t's program and memory to w as a complete image:
// header, then one instruction record per populated program slot, then the
// populated prefix of memory. Any I/O error aborts the write immediately;
// there is no partial-success return -- a non-nil error means the output
// must not be treated as a usable image.
func Write(w io.Writer, t *translate.Translator, magic uint32, version uint16) error {
	ew := bio.NewErrWriter(w)

	hdr := Header{
		Magic:          magic,
		Version:        version,
		Entry:          t.Entry,
		ProgramSize:    uint64(len(t.Program)),
		MemorySize:     uint64(len(t.Memory)),
		MemoryCapacity: uint64(t.MemoryCapacity),
	}
	if err := writeHeader(ew, hdr); err != nil {
		return err
	}

	for _, inst := range t.Program {
		if err := writeInstruction(ew, inst); err != nil {
			return err
		}
	}

	if _, err := ew.Write(t.Memory); err != nil {
		return errors.Wrap(err, "could not write memory segment")
	}

	return ew.Err
}

func writeHeader(w io.Writer, hdr Header) error {
	if err := binary.Write(w, ByteOrder, hdr.Magic); err != nil {
		return errors.Wrap(err, "could not write image magic")
	}
	if err := binary.Write(w, ByteOrder, hdr.Version); err != nil {
		return errors.Wrap(err, "could not write image version")
	}
	if err := binary.Write(w, ByteOrder, hdr.Entry); err != nil {
		return errors.Wrap(err, "could not write entry point")
	}
	if err := binary.Write(w, ByteOrder, hdr.ProgramSize); err != nil {
		return errors.Wrap(err, "could not write program size")
	}
	if err := binary.Write(w, ByteOrder, hdr.MemorySize); err != nil {
		return errors.Wrap(err, "could not write memory size")
	}
	if err := binary.Write(w, ByteOrder, hdr.MemoryCapacity); err != nil {
		return errors.Wrap(err, "could not write memory capacity")
	}
	return nil
}

func writeInstruction(w io.Writer, inst translate.Instruction) error {
	if err := binary.Write(w, ByteOrder, uint8(inst.Type)); err != nil {
		return errors.Wrap(err, "could not write instruction type")
	}
	if err := binary.Write(w, ByteOrder, inst.Operand.AsU64()); err != nil {
		return errors.Wrap(err, "could not write instruction operand")
	}
	return nil
}

// headerSize is the on-disk byte size of Header: 4 + 2 + 8*4. Each field is
// written on its own and no padding is inserted, so this is exactly the sum
// of the field widths.
const headerSize = 4 + 2 + 8 + 8 + 8 + 8

// InstructionRecordSize is the on-disk byte size of one instruction record:
// a one-byte type tag followed by an eight-byte operand word.
const InstructionRecordSize = 1 + 8

// Record is one decoded instruction as returned by Read, for callers that
// have no Translator to hang a translate.Instruction off of.
type Record struct {
	Type    uint8
	Operand uint64
}

// Read decodes a complete image: its header, program records and raw
// memory. It rejects images whose magic or version does not match what the
// caller expects -- spec.md 6 requires the reader to reject on mismatch.
func Read(r io.Reader, wantMagic uint32, wantVersion uint16) (Header, []Record, []byte, error) {
	var hdr Header
	if err := readHeader(r, &hdr); err != nil {
		return Header{}, nil, nil, err
	}
	if hdr.Magic != wantMagic {
		return Header{}, nil, nil, errors.Errorf("bad image magic: got %#x, want %#x", hdr.Magic, wantMagic)
	}
	if hdr.Version != wantVersion {
		return Header{}, nil, nil, errors.Errorf("bad image version: got %d, want %d", hdr.Version, wantVersion)
	}

	records := make([]Record, 0, hdr.ProgramSize)
	for i := uint64(0); i < hdr.ProgramSize; i++ {
		var rec Record
		if err := binary.Read(r, ByteOrder, &rec.Type); err != nil {
			return Header{}, nil, nil, errors.Wrapf(err, "could not read instruction %d type", i)
		}
		if err := binary.Read(r, ByteOrder, &rec.Operand); err != nil {
			return Header{}, nil, nil, errors.Wrapf(err, "could not read instruction %d operand", i)
		}
		records = append(records, rec)
	}

	mem := make([]byte, hdr.MemorySize)
	if hdr.MemorySize > 0 {
		if _, err := io.ReadFull(r, mem); err != nil {
			return Header{}, nil, nil, errors.Wrap(err, "could not read memory segment")
		}
	}

	return hdr, records, mem, nil
}

func readHeader(r io.Reader, hdr *Header) error {
	if err := binary.Read(r, ByteOrder, &hdr.Magic); err != nil {
		return errors.Wrap(err, "could not read image magic")
	}
	if err := binary.Read(r, ByteOrder, &hdr.Version); err != nil {
		return errors.Wrap(err, "could not read image version")
	}
	if err := binary.Read(r, ByteOrder, &hdr.Entry); err != nil {
		return errors.Wrap(err, "could not read entry point")
	}
	if err := binary.Read(r, ByteOrder, &hdr.ProgramSize); err != nil {
		return errors.Wrap(err, "could not read program size")
	}
	if err := binary.Read(r, ByteOrder, &hdr.MemorySize); err != nil {
		return errors.Wrap(err, "could not read memory size")
	}
	if err := binary.Read(r, ByteOrder, &hdr.MemoryCapacity); err != nil {
		return errors.Wrap(err, "could not read memory capacity")
	}
	return nil
}
