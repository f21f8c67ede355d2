package container_test

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf16"

	"github.com/m-mizutani/gt"
)

// zipEntry is one file to put into a test archive. A name with a trailing
// slash creates a directory placeholder.
type zipEntry struct {
	name string
	body []byte
}

func writeTestZip(t *testing.T, dir string, entries []zipEntry) string {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.name)
		gt.NoError(t, err)
		_, err = w.Write(e.body)
		gt.NoError(t, err)
	}
	gt.NoError(t, zw.Close())

	path := filepath.Join(dir, "archive.zip")
	gt.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

// Compound file sector constants (512-byte sectors, version 3).
const (
	sectFAT  = 0xFFFFFFFD
	sectEnd  = 0xFFFFFFFE
	sectFree = 0xFFFFFFFF
	noStream = 0xFFFFFFFF
)

var oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// cfbDirEntry encodes one 128-byte compound file directory entry.
func cfbDirEntry(name string, objType byte, left, right, child, start uint32, size uint64) []byte {
	b := make([]byte, 128)
	u := utf16.Encode([]rune(name))
	for i, c := range u {
		binary.LittleEndian.PutUint16(b[i*2:], c)
	}
	binary.LittleEndian.PutUint16(b[64:], uint16((len(u)+1)*2)) // name length incl. terminator
	b[66] = objType                                             // 1 storage, 2 stream, 5 root
	b[67] = 1                                                   // black
	binary.LittleEndian.PutUint32(b[68:], left)
	binary.LittleEndian.PutUint32(b[72:], right)
	binary.LittleEndian.PutUint32(b[76:], child)
	binary.LittleEndian.PutUint32(b[116:], start)
	binary.LittleEndian.PutUint64(b[120:], size)
	return b
}

// Byte offset of the right-sibling pointer of directory entry 1 ("Data"):
// header (512) + FAT sector (512) + one directory entry (128) + 72.
const cfbDataSiblingOffset = 512 + 512 + 128 + 72

// buildTestCompoundFile builds a minimal OLE compound file with two 4096-byte
// streams — "Data" directly under the root and "Inner" inside a storage named
// "Store" — plus a zero-byte stream with an empty name hanging off "Inner".
// Streams are sized above the mini-stream cutoff so no miniFAT is required.
// Returns the raw file bytes and the contents of both named streams.
func buildTestCompoundFile() ([]byte, []byte, []byte) {
	const sectorSize = 512
	const streamSize = 4096
	const streamSectors = streamSize / sectorSize

	dataContent := bytes.Repeat([]byte("DATA1234"), streamSize/8)
	innerContent := bytes.Repeat([]byte("inner..!"), streamSize/8)

	// Sector layout: 0 FAT, 1-2 directory, 3-10 "Data", 11-18 "Inner".
	header := make([]byte, sectorSize)
	copy(header, oleSignature)
	binary.LittleEndian.PutUint16(header[24:], 0x003E)   // minor version
	binary.LittleEndian.PutUint16(header[26:], 0x0003)   // major version 3
	binary.LittleEndian.PutUint16(header[28:], 0xFFFE)   // byte order
	binary.LittleEndian.PutUint16(header[30:], 0x0009)   // sector shift (512)
	binary.LittleEndian.PutUint16(header[32:], 0x0006)   // mini sector shift (64)
	binary.LittleEndian.PutUint32(header[44:], 1)        // number of FAT sectors
	binary.LittleEndian.PutUint32(header[48:], 1)        // first directory sector
	binary.LittleEndian.PutUint32(header[56:], 0x1000)   // mini stream cutoff (4096)
	binary.LittleEndian.PutUint32(header[60:], sectEnd)  // first miniFAT sector
	binary.LittleEndian.PutUint32(header[64:], 0)        // number of miniFAT sectors
	binary.LittleEndian.PutUint32(header[68:], sectEnd)  // first DIFAT sector
	binary.LittleEndian.PutUint32(header[72:], 0)        // number of DIFAT sectors
	binary.LittleEndian.PutUint32(header[76:], 0)        // DIFAT[0]: FAT at sector 0
	for i := 1; i < 109; i++ {
		binary.LittleEndian.PutUint32(header[76+i*4:], sectFree)
	}

	const dataStart = 3
	const innerStart = dataStart + streamSectors

	fat := make([]byte, sectorSize)
	putFAT := func(i int, v uint32) { binary.LittleEndian.PutUint32(fat[i*4:], v) }
	putFAT(0, sectFAT)
	putFAT(1, 2) // directory chain: sectors 1-2
	putFAT(2, sectEnd)
	for s := dataStart; s < dataStart+streamSectors-1; s++ {
		putFAT(s, uint32(s+1))
	}
	putFAT(dataStart+streamSectors-1, sectEnd)
	for s := innerStart; s < innerStart+streamSectors-1; s++ {
		putFAT(s, uint32(s+1))
	}
	putFAT(innerStart+streamSectors-1, sectEnd)
	for i := innerStart + streamSectors; i < sectorSize/4; i++ {
		putFAT(i, sectFree)
	}

	// Directory tree: root -> "Data" (right sibling "Store"), "Store" ->
	// "Inner", and an empty-name stream as Inner's left sibling.
	var directory []byte
	directory = append(directory, cfbDirEntry("Root Entry", 5, noStream, noStream, 1, sectEnd, 0)...)
	directory = append(directory, cfbDirEntry("Data", 2, noStream, 2, noStream, dataStart, streamSize)...)
	directory = append(directory, cfbDirEntry("Store", 1, noStream, noStream, 3, 0, 0)...)
	directory = append(directory, cfbDirEntry("Inner", 2, 4, noStream, noStream, innerStart, streamSize)...)
	directory = append(directory, cfbDirEntry("", 2, noStream, noStream, noStream, sectEnd, 0)...)
	directory = append(directory, make([]byte, 2*sectorSize-len(directory))...) // unallocated slots

	var file bytes.Buffer
	file.Write(header)
	file.Write(fat)
	file.Write(directory)
	file.Write(dataContent)
	file.Write(innerContent)

	return file.Bytes(), dataContent, innerContent
}

func writeTestCompoundFile(t *testing.T, dir string) (string, []byte, []byte) {
	t.Helper()

	raw, dataContent, innerContent := buildTestCompoundFile()
	path := filepath.Join(dir, "doc.ole")
	gt.NoError(t, os.WriteFile(path, raw, 0644))
	return path, dataContent, innerContent
}
