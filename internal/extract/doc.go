// Package extract turns the markup of the technical reports index into
// model entries.
//
// The index groups documents in "family" sections. Each section holds a
// list of items with a header anchor, a maturity label and a definition
// list of metadata (tags, deliverers, translations):
//
//	<section class="family-grouping">
//	  <h2>CSS</h2>
//	  <div class="tr-list__item">
//	    <div class="tr-list__item__header"><h3><a href="...">Title</a></h3></div>
//	    <span class="maturity-level">Candidate Standard</span>
//	    <dl class="inline">
//	      <div><dt>Deliverers</dt><dd><a href="...">CSS Working Group</a></dd></div>
//	    </dl>
//	  </div>
//	</section>
//
// Parsing is done with goquery on top of golang.org/x/net/html.
// Unknown maturity labels and entries without deliverers stop the
// extraction; unknown metadata keys are ignored.
//
// # Usage
//
//	ex := extract.NewExtractor(extract.WithLogger(logger))
//	catalog, err := ex.Catalog(strings.NewReader(document))
package extract
