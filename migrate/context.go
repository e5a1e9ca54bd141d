package migrate

import (
	"context"
	"fmt"
	"log"

	"github.com/birdcage/zendesk-ada/ada"
	"github.com/birdcage/zendesk-ada/zendesk"
)

// FilterSet is the user's selection of what to copy.  If all three selector
// sets are empty the pipeline fetches nothing at all; that's a contract, not
// an optimisation.
type FilterSet struct {
	Locales       []string
	BrandIDs      []int64
	CategoryIDs   []int64
	PublishedOnly bool
}

// Empty reports whether no selector is active.  PublishedOnly on its own
// selects nothing; it only narrows an otherwise-selected set.
func (f FilterSet) Empty() bool {
	return len(f.Locales) == 0 && len(f.BrandIDs) == 0 && len(f.CategoryIDs) == 0
}

// PipelineContext owns everything one migration run touches: the two API
// clients, the user's filter selection, the remote filter tables, and the
// articles accumulated so far.  It is built by the caller and passed around
// explicitly; there is no ambient state.
type PipelineContext struct {
	Zendesk *zendesk.API
	Ada     *ada.API

	Filters FilterSet

	// filter tables, loaded up front by LoadTables
	Brands   []zendesk.Brand
	Sections zendesk.SectionTable

	// articles gathered by Fetch; owned by this run only
	Articles []zendesk.Article

	Log    *RunLog
	Logger *log.Logger
}

// LoadTables fetches the remote lookup tables the active filters need:
// brand records when brands are selected, the section table when categories
// are.  A failed section fetch is downgraded to a warning so category
// filtering can fail open later rather than abort the run.
func (p *PipelineContext) LoadTables(ctx context.Context) error {
	if len(p.Filters.BrandIDs) > 0 && p.Brands == nil {
		brands, err := p.Zendesk.GetBrands(ctx)
		if err != nil {
			p.Log.Add("fetch brands", StatusError, "", err.Error())
			return fmt.Errorf("migrate: couldn't load brand table: %w", err)
		}
		p.Log.Add("fetch brands", StatusSuccess, "", fmt.Sprintf("found %d brands", len(brands)))
		p.Brands = brands
	}

	if len(p.Filters.CategoryIDs) > 0 && p.Sections == nil {
		sections, err := p.Zendesk.GetSections(ctx)
		if err != nil {
			p.Log.Add("fetch sections", StatusWarning, "", err.Error())
			p.logf("warning: couldn't load section table, category filter will pass everything through: %v", err)
			p.Sections = zendesk.SectionTable{}
			return nil
		}
		p.Log.Add("fetch sections", StatusSuccess, "", fmt.Sprintf("found %d sections", len(sections)))
		p.Sections = zendesk.BuildSectionTable(sections)
	}

	return nil
}

func (p *PipelineContext) logf(format string, a ...any) {
	if p.Logger != nil {
		p.Logger.Printf(format, a...)
	}
}
