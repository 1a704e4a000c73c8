package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chrisuehlinger/pagekit/console"
	"github.com/chrisuehlinger/pagekit/dom"
	"github.com/chrisuehlinger/pagekit/events"
	"github.com/chrisuehlinger/pagekit/html"
	"github.com/chrisuehlinger/pagekit/js"
	"github.com/chrisuehlinger/pagekit/ui"
)

// defaultPage is the bundled datastore viewer page, used when no page
// file is given on the command line.
const defaultPage = `<!DOCTYPE html>
<html>
<head><title>Datastore Viewer</title></head>
<body>
  <h2>Datastore Viewer</h2>
  <table id="entities">
    <tr>
      <th><input type="checkbox" id="select-all"></th>
      <th>Key</th>
      <th>Kind</th>
    </tr>
    <tr>
      <td><input type="checkbox" class="row-select"></td>
      <td>ahBkZXZ-bXktYXBwLWlkcgsLEgRVc2VyGAEM</td>
      <td>User</td>
    </tr>
    <tr>
      <td><input type="checkbox" class="row-select"></td>
      <td>ahBkZXZ-bXktYXBwLWlkcgsLEgRVc2VyGAIM</td>
      <td>User</td>
    </tr>
    <tr>
      <td><input type="checkbox" class="row-select"></td>
      <td>ahBkZXZ-bXktYXBwLWlkcgwLEgVHdWVzdBgDDA</td>
      <td>Guest</td>
    </tr>
  </table>
  <button id="delete-selected" class="selection-action" disabled>Delete</button>
  <button id="compare-selected" class="selection-action" data-min-selected="2" disabled>Compare</button>
  <script>
    select_all.addEventListener('click', function (e) {
      console.log('select-all toggled');
    });
    delete_selected.addEventListener('click', function (e) {
      console.log('delete requested');
    });
  </script>
</body>
</html>`

func main() {
	fmt.Println("Pagekit - admin console runtime")

	source := defaultPage
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read page: %v\n", err)
			os.Exit(1)
		}
		source = string(data)
	}

	doc, err := html.Parse(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse page: %v\n", err)
		os.Exit(1)
	}

	view := ui.NewConsoleUI("Datastore Viewer")
	registry := events.NewRegistry(view.Platform())

	// The view must render first: rendering resets the attach slots the
	// listeners below bind to.
	view.SetDocument(doc)

	ctrl := console.NewController(registry, doc)
	attached, err := ctrl.Attach()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to wire page widgets: %v\n", err)
		os.Exit(1)
	}
	if !attached {
		fmt.Println("Page has no entity table; showing it read-only")
	}
	view.SyncControls()

	runScripts(doc, registry)

	view.Run()
}

// runScripts binds every element with an id into the script globals and
// executes the page's inline scripts. Script errors are reported but do
// not stop the console.
func runScripts(doc *dom.Document, registry *events.Registry) {
	runtime := js.NewRuntime()
	runtime.SetOnError(func(err error) {
		fmt.Fprintln(os.Stderr, "[script]", err)
	})
	bridge := js.NewBridge(runtime, registry)
	bridge.SetupEventConstructor()

	for _, el := range doc.GetElementsByTagName("*") {
		if id := el.ID(); id != "" {
			bridge.BindGlobal(scriptIdent(id), el.AsNode())
		}
	}

	for i, script := range doc.GetElementsByTagName("script") {
		src := fmt.Sprintf("inline-%d.js", i+1)
		runtime.ExecuteScript(script.AsNode().TextContent(), src)
	}
}

// scriptIdent converts an element id into a usable global name.
func scriptIdent(id string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' || r == ':' {
			return '_'
		}
		return r
	}, id)
}
