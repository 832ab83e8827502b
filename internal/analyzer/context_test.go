package analyzer

import (
	"strings"
	"testing"

	"github.com/IjaIjb/code-quality-analyzer/domain"
)

func extract(source string) *Context {
	return ExtractContext(NewSourceScanner(strings.Split(source, "\n")))
}

func TestExtractContextFunctionComponent(t *testing.T) {
	ctx := extract(`function ProfileCard(props) {
  return <div>{props.name}</div>;
}`)

	if ctx.ComponentName != "ProfileCard" {
		t.Errorf("name = %q, want ProfileCard", ctx.ComponentName)
	}
	if ctx.ComponentType != domain.ComponentTypeFunctional {
		t.Errorf("type = %s, want functional", ctx.ComponentType)
	}
}

func TestExtractContextArrowComponent(t *testing.T) {
	ctx := extract(`const Counter = () => {
  return <span>0</span>;
};`)

	if ctx.ComponentName != "Counter" || ctx.ComponentType != domain.ComponentTypeFunctional {
		t.Errorf("got %q/%s, want Counter/functional", ctx.ComponentName, ctx.ComponentType)
	}
}

func TestExtractContextClassComponent(t *testing.T) {
	ctx := extract(`class Widget extends React.Component {
  render() { return null; }
}`)

	if ctx.ComponentName != "Widget" || ctx.ComponentType != domain.ComponentTypeClass {
		t.Errorf("got %q/%s, want Widget/class", ctx.ComponentName, ctx.ComponentType)
	}
}

func TestExtractContextFirstDeclarationWins(t *testing.T) {
	ctx := extract(`function First() { return <a/>; }
function Second() { return <b/>; }`)

	if ctx.ComponentName != "First" {
		t.Errorf("name = %q, want First", ctx.ComponentName)
	}
}

func TestExtractContextUnknownWhenNoComponent(t *testing.T) {
	ctx := extract(`const helper = (x) => x * 2;`)

	if ctx.ComponentName != "" || ctx.ComponentType != domain.ComponentTypeUnknown {
		t.Errorf("got %q/%s, want empty/unknown", ctx.ComponentName, ctx.ComponentType)
	}
}

func TestExtractContextStateVariables(t *testing.T) {
	ctx := extract(`function Form() {
  const [value, setValue] = useState("");
  const [count, setCount] = useState(0);
  return <input/>;
}`)

	if !ctx.StateVariables["value"] || !ctx.StateVariables["count"] {
		t.Errorf("state variables = %v, want value and count", ctx.StateVariables)
	}
	if len(ctx.StateVariables) != 2 {
		t.Errorf("expected 2 state variables, got %d", len(ctx.StateVariables))
	}
}

func TestExtractContextEffectDependencies(t *testing.T) {
	ctx := extract(`function Timer() {
  useEffect(() => { tick(count); }, [count, limit]);
  return null;
}`)

	if !ctx.EffectDependencies["count"] || !ctx.EffectDependencies["limit"] {
		t.Errorf("dependencies = %v, want count and limit", ctx.EffectDependencies)
	}
}

func TestExtractContextNestingLevel(t *testing.T) {
	ctx := extract(`function deep() {
  if (a) {
    if (b) {
      run();
    }
  }
}`)

	if ctx.NestingLevel != 3 {
		t.Errorf("nesting level = %d, want 3", ctx.NestingLevel)
	}
}

func TestExtractContextIgnoresStrings(t *testing.T) {
	ctx := extract(`const label = "function Fake() {";`)

	if ctx.ComponentName != "" {
		t.Errorf("string content produced component %q", ctx.ComponentName)
	}
	if ctx.NestingLevel != 0 {
		t.Errorf("string braces counted toward nesting: %d", ctx.NestingLevel)
	}
}
