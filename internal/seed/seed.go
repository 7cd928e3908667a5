// Package seed loads the chamber's starting state from YAML documents.
//
// The built-in chamber is embedded in the binary. A seed file, or a directory
// of seed files merged in path order, can replace it.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/parliament/internal/debate"
	"github.com/Iron-Ham/parliament/internal/errors"
	"github.com/Iron-Ham/parliament/internal/proposal"
	"github.com/Iron-Ham/parliament/internal/roster"
)

//go:embed default.yaml
var defaultDocument []byte

// Document is the on-disk shape of a seed file.
type Document struct {
	Groups      []GroupDoc      `yaml:"groups"`
	Politicians []PoliticianDoc `yaml:"politicians"`
	Proposals   []ProposalDoc   `yaml:"proposals"`
	Statements  []StatementDoc  `yaml:"statements"`
}

// GroupDoc describes one parliamentary group.
type GroupDoc struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Color       string `yaml:"color"`
	Orientation string `yaml:"orientation"`
	Seats       int    `yaml:"seats"`
	Description string `yaml:"description"`
}

// PoliticianDoc describes one politician.
type PoliticianDoc struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Group     string `yaml:"group"`
	Role      string `yaml:"role,omitempty"`
	Specialty string `yaml:"specialty"`
}

// ProposalDoc describes one proposal on the starting docket.
type ProposalDoc struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	ProposedBy  string   `yaml:"proposed_by"`
	Status      string   `yaml:"status,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Votes       VotesDoc `yaml:"votes,omitempty"`
}

// VotesDoc is a starting tally.
type VotesDoc struct {
	For     int `yaml:"for"`
	Against int `yaml:"against"`
	Abstain int `yaml:"abstain"`
}

// StatementDoc describes an opening statement. Offset is relative to the
// load time, e.g. "-5m" for five minutes ago.
type StatementDoc struct {
	ID         string        `yaml:"id"`
	Politician string        `yaml:"politician"`
	Law        string        `yaml:"law"`
	Offset     time.Duration `yaml:"offset"`
	Content    string        `yaml:"content"`
}

// Data is a decoded seed, ready to build a chamber from.
type Data struct {
	Groups      []roster.Group
	Politicians []roster.Politician
	Proposals   []proposal.Proposal
	Statements  []debate.Statement
}

// Default decodes the embedded chamber. Statement timestamps are relative to now.
func Default(now time.Time) (*Data, error) {
	return Load(bytes.NewReader(defaultDocument), now)
}

// DefaultDocument returns the raw embedded seed.
func DefaultDocument() []byte {
	return bytes.Clone(defaultDocument)
}

// Load decodes one YAML seed document.
func Load(r io.Reader, now time.Time) (*Data, error) {
	doc, err := decode(r)
	if err != nil {
		return nil, err
	}
	return doc.Data(now)
}

// LoadFile decodes the seed file at name on fs.
func LoadFile(fs afero.Fs, name string, now time.Time) (*Data, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "open seed %s", name)
	}
	defer func() { _ = f.Close() }()

	doc, err := decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "seed %s", name)
	}
	return doc.Data(now)
}

// LoadDir merges every *.yaml file under dir, recursively, in lexical path order.
func LoadDir(fs afero.Fs, dir string, now time.Time) (*Data, error) {
	matches, err := doublestar.Glob(afero.NewIOFS(afero.NewBasePathFs(fs, dir)), "**/*.yaml")
	if err != nil {
		return nil, errors.Wrapf(err, "scan seed directory %s", dir)
	}
	if len(matches) == 0 {
		return nil, errors.NewValidationError("no seed files found").WithField("seed.path").WithValue(dir).WithCause(errors.ErrSeedInvalid)
	}
	slices.Sort(matches)

	var merged Document
	for _, m := range matches {
		name := filepath.Join(dir, filepath.FromSlash(m))
		f, err := fs.Open(name)
		if err != nil {
			return nil, errors.Wrapf(err, "open seed %s", name)
		}
		doc, err := decode(f)
		_ = f.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "seed %s", name)
		}
		merged.Groups = append(merged.Groups, doc.Groups...)
		merged.Politicians = append(merged.Politicians, doc.Politicians...)
		merged.Proposals = append(merged.Proposals, doc.Proposals...)
		merged.Statements = append(merged.Statements, doc.Statements...)
	}
	return merged.Data(now)
}

// LoadPath loads a file or a directory, whichever path names. An empty path
// loads the embedded chamber.
func LoadPath(fs afero.Fs, name string, now time.Time) (*Data, error) {
	if name == "" {
		return Default(now)
	}
	info, err := fs.Stat(name)
	if err != nil {
		return nil, errors.Wrapf(err, "seed path %s", name)
	}
	if info.IsDir() {
		return LoadDir(fs, name, now)
	}
	return LoadFile(fs, name, now)
}

func decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.NewValidationError("malformed seed document").WithCause(err)
	}
	return &doc, nil
}

// Data converts the document into domain values. It checks field shapes
// only; cross-references are checked when the chamber is built.
func (d *Document) Data(now time.Time) (*Data, error) {
	out := &Data{}

	for _, g := range d.Groups {
		o, err := roster.ParseOrientation(g.Orientation)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", g.ID, err)
		}
		out.Groups = append(out.Groups, roster.Group{
			ID:          g.ID,
			Name:        g.Name,
			Color:       g.Color,
			Orientation: o,
			SeatsCount:  g.Seats,
			Description: strings.TrimSpace(g.Description),
		})
	}

	for _, p := range d.Politicians {
		out.Politicians = append(out.Politicians, roster.Politician{
			ID:        p.ID,
			Name:      p.Name,
			GroupID:   p.Group,
			Role:      p.Role,
			Specialty: p.Specialty,
		})
	}

	for _, p := range d.Proposals {
		status := proposal.StatusPending
		if p.Status != "" {
			s, err := proposal.ParseStatus(p.Status)
			if err != nil {
				return nil, fmt.Errorf("proposal %s: %w", p.ID, err)
			}
			status = s
		}
		out.Proposals = append(out.Proposals, proposal.Proposal{
			ID:          p.ID,
			Title:       p.Title,
			Description: strings.TrimSpace(p.Description),
			ProposedBy:  p.ProposedBy,
			Status:      status,
			Votes:       proposal.Votes{For: p.Votes.For, Against: p.Votes.Against, Abstain: p.Votes.Abstain},
			Tags:        p.Tags,
			SubmittedAt: now,
		})
	}

	for _, s := range d.Statements {
		out.Statements = append(out.Statements, debate.Statement{
			ID:           s.ID,
			PoliticianID: s.Politician,
			LawID:        s.Law,
			Content:      strings.TrimSpace(s.Content),
			Timestamp:    now.Add(s.Offset),
		})
	}

	return out, nil
}
