package layout

import "html/template"

var shellTemplate = template.Must(template.New("shell").Parse(shellHTML))

// shellHTML defines the "shell", "sidebar" and "main" templates. The
// sidebar and main regions are swapped in place by the live script.
const shellHTML = `{{define "shell"}}<!DOCTYPE html>
<html lang="{{.Lang}}" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body class="{{if .SidebarOpen}}sidebar-open{{end}}" data-session="{{.SessionID}}" data-route="{{.Route}}">
  <header class="top-bar">
    <button class="menu-toggle" id="menu-toggle" aria-label="Toggle sidebar">
      <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
        <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
      </svg>
    </button>
    <a class="site-name" href="{{.HomeHref}}" data-nav>{{.SiteName}}</a>
    <a class="locale-switch" id="locale-switch" href="{{.SwitchHref}}" data-nav>{{.SwitchLabel}}</a>
  </header>
  <nav class="sidebar" id="sidebar">{{template "sidebar" .}}</nav>
  <div class="sidebar-overlay" id="sidebar-overlay"></div>
  <main class="content" id="main">{{template "main" .}}</main>
  <script src="/static/app.js"></script>
</body>
</html>{{end}}

{{define "sidebar"}}
{{range .Sections}}<section class="nav-section">
  {{if .Title}}<h3>{{.Title}}</h3>{{end}}
  <ul>
  {{range .Items}}<li><a href="{{.Path}}" data-nav{{if .Active}} class="active" aria-current="page"{{end}}>{{.Label}}</a></li>
  {{end}}</ul>
</section>
{{end}}{{end}}

{{define "main"}}<article class="page-content">{{.Content}}</article>{{end}}`

// Stylesheet is served at /static/style.css.
const Stylesheet = `:root {
  --bg: #ffffff;
  --bg-sidebar: #f1f3f5;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-light: #e7f5ff;
  --code-bg: #f1f3f5;
  --sidebar-width: 280px;
  --content-max-width: 900px;
}

* { box-sizing: border-box; }
body { margin: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; color: var(--text); background: var(--bg); }
a { color: var(--accent); text-decoration: none; }

.top-bar { position: fixed; top: 0; left: 0; right: 0; height: 56px; display: flex; align-items: center; gap: 16px; padding: 0 20px; border-bottom: 1px solid var(--border); background: var(--bg); z-index: 30; }
.site-name { font-weight: 700; font-size: 1.1rem; color: var(--text); }
.locale-switch { margin-left: auto; font-size: 0.9rem; }
.menu-toggle { display: none; background: none; border: 0; cursor: pointer; color: var(--text); }

.sidebar { position: fixed; top: 56px; bottom: 0; left: 0; width: var(--sidebar-width); overflow-y: auto; padding: 16px; background: var(--bg-sidebar); border-right: 1px solid var(--border); z-index: 20; }
.nav-section h3 { margin: 16px 0 6px; font-size: 0.75rem; text-transform: uppercase; color: var(--text-muted); }
.nav-section ul { list-style: none; margin: 0; padding: 0; }
.nav-section a { display: block; padding: 4px 8px; border-radius: 4px; color: var(--text); font-family: monospace; }
.nav-section a.active { background: var(--accent-light); color: var(--accent); font-weight: 600; }
.sidebar-overlay { display: none; }

.content { margin-left: var(--sidebar-width); padding: 80px 40px 40px; }
.page-content { max-width: var(--content-max-width); }
.page-content pre { padding: 12px 16px; border-radius: 6px; background: var(--code-bg); overflow-x: auto; }

@media (max-width: 768px) {
  .menu-toggle { display: block; }
  .sidebar { transform: translateX(-100%); transition: transform 0.2s; }
  .sidebar-open .sidebar { transform: none; }
  .sidebar-open .sidebar-overlay { display: block; position: fixed; inset: 56px 0 0 0; background: rgba(0,0,0,0.4); z-index: 10; }
  .content { margin-left: 0; padding: 72px 16px 24px; }
}
`

// Script is served at /static/app.js. It forwards navigation gestures to
// the session socket and applies the region updates it receives. Without a
// socket every link still works as a normal page load.
const Script = `(function() {
  var body = document.body;
  var session = body.getAttribute('data-session');
  if (!session || !window.WebSocket) return;

  var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
  var ws = new WebSocket(proto + '//' + location.host + '/ws?session=' + encodeURIComponent(session));
  var open = false;
  ws.onopen = function() { open = true; };
  ws.onclose = function() { open = false; };

  function send(msg) {
    if (!open) return false;
    ws.send(JSON.stringify(msg));
    return true;
  }

  ws.onmessage = function(ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type !== 'update') return;
    document.getElementById('main').innerHTML = msg.main;
    document.getElementById('sidebar').innerHTML = msg.sidebar;
    document.title = msg.title;
    document.documentElement.lang = msg.lang;
    body.setAttribute('data-route', msg.route);
    body.classList.toggle('sidebar-open', msg.sidebar_open);
    var sw = document.getElementById('locale-switch');
    if (sw && msg.switch_href) { sw.href = msg.switch_href; sw.textContent = msg.switch_label; }
    if (msg.push) history.pushState({ route: msg.push }, '', msg.push);
    window.scrollTo(0, 0);
  };

  document.addEventListener('click', function(e) {
    var link = e.target.closest('a[data-nav]');
    if (!link || e.metaKey || e.ctrlKey || e.shiftKey) return;
    if (send({ type: 'navigate', path: link.getAttribute('href') })) e.preventDefault();
  });

  document.getElementById('menu-toggle').addEventListener('click', function() {
    send({ type: 'toggle_sidebar' });
  });
  document.getElementById('sidebar-overlay').addEventListener('click', function() {
    send({ type: 'close_sidebar' });
  });

  window.addEventListener('popstate', function() {
    if (!send({ type: 'popstate', path: location.pathname })) location.reload();
  });
})();
`
