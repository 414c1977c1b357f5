package render

const containerTemplate = `{{define "container"}}<div class="timeline-line"></div>
{{range .}}<div class="timeline-item{{if .Expanded}} active{{end}}" id="entry-{{.ID}}">
  <form class="timeline-toggle" method="post" action="/entries/{{.ID}}/toggle">
    <button type="submit" class="timeline-header">
      <span class="timeline-point"></span>
      <span class="timeline-date">{{.Date}}</span>
      <span class="timeline-title">{{.Title}}</span>
    </button>
  </form>
  <div class="timeline-content">
    {{- if .Description}}
    <div class="timeline-description">{{.Description}}</div>
    {{- end}}
    {{- if .ImageURL}}
    <img src="{{.ImageURL}}" alt="{{.Title}}" class="timeline-image" onerror="this.style.display='none'">
    {{- end}}
    <form class="timeline-delete" method="post" action="/entries/{{.ID}}/delete" data-confirm="Delete this timeline entry?">
      <button type="submit" class="delete-btn">Delete</button>
    </form>
  </div>
</div>
{{end}}{{end}}`

const confirmTemplate = `{{define "confirm"}}<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Delete entry</title></head>
<body>
<p>Delete this timeline entry?</p>
<p><strong>{{.Date}}</strong> {{.Title}}</p>
<form method="post" action="/entries/{{.ID}}/delete">
  <input type="hidden" name="confirm" value="yes">
  <button type="submit">Delete</button>
  <a href="/">Cancel</a>
</form>
</body>
</html>
{{end}}`

const pageTemplate = `{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Timeline</title>
<style>
body { font-family: sans-serif; margin: 0; background: #f5f6f8; color: #222; }
header { display: flex; justify-content: space-between; align-items: center; padding: 1rem 2rem; background: #fff; border-bottom: 1px solid #ddd; }
.add-btn { padding: .5rem 1rem; background: #3b6ef5; color: #fff; border-radius: 4px; text-decoration: none; }
#timelineContainer { position: relative; max-width: 720px; margin: 2rem auto; padding-left: 2rem; }
.timeline-line { position: absolute; left: .6rem; top: 0; bottom: 0; width: 2px; background: #c9d2e3; }
.timeline-item { position: relative; margin-bottom: 1rem; background: #fff; border-radius: 6px; box-shadow: 0 1px 2px rgba(0,0,0,.08); }
.timeline-header { display: flex; gap: 1rem; width: 100%; padding: .75rem 1rem; border: 0; background: none; text-align: left; cursor: pointer; font: inherit; }
.timeline-point { position: absolute; left: -1.75rem; top: 1rem; width: .8rem; height: .8rem; border-radius: 50%; background: #3b6ef5; }
.timeline-date { color: #666; font-variant-numeric: tabular-nums; }
.timeline-title { font-weight: bold; }
.timeline-content { display: none; padding: 0 1rem 1rem; }
.timeline-item.active .timeline-content { display: block; }
.timeline-image { max-width: 100%; margin: .5rem 0; border-radius: 4px; }
.delete-btn { background: #e5484d; color: #fff; border: 0; padding: .3rem .8rem; border-radius: 4px; cursor: pointer; }
.empty-state { text-align: center; color: #888; padding: 3rem 0; }
.modal { display: none; position: fixed; inset: 0; }
.modal:target, .modal.active { display: flex; align-items: center; justify-content: center; }
.modal-backdrop { position: absolute; inset: 0; background: rgba(0,0,0,.4); }
.modal-content { position: relative; background: #fff; padding: 1.5rem; border-radius: 6px; width: min(420px, 90vw); }
.modal-content label { display: block; margin-top: .75rem; }
.modal-content input, .modal-content textarea { width: 100%; box-sizing: border-box; }
.close-btn { position: absolute; right: 1rem; top: .5rem; text-decoration: none; font-size: 1.5rem; color: #666; }
</style>
</head>
<body>
<header>
  <h1>Timeline</h1>
  <a href="#formModal" class="add-btn" id="addBtn">Add entry</a>
</header>
<div class="modal" id="formModal">
  <a href="#" class="modal-backdrop" data-dismiss></a>
  <div class="modal-content">
    <a href="#" class="close-btn" id="closeBtn" data-dismiss>&times;</a>
    <form id="timelineForm" method="post" action="/entries">
      <label>Date <input type="date" name="date" required></label>
      <label>Title <input type="text" name="title" required></label>
      <label>Description <textarea name="description" rows="3"></textarea></label>
      <label>Image URL <input type="text" name="image" placeholder="https://"></label>
      <p><button type="submit">Save</button></p>
    </form>
  </div>
</div>
<main id="timelineContainer" data-count="{{.Count}}">{{.Container}}</main>
<script>
(function () {
  var modal = document.getElementById('formModal');
  var form = document.getElementById('timelineForm');
  var container = document.getElementById('timelineContainer');

  function dismiss() {
    modal.classList.remove('active');
    form.reset();
    if (location.hash === '#formModal') {
      history.replaceState(null, '', location.pathname);
    }
  }

  function post(action, body) {
    return fetch(action, {
      method: 'POST',
      body: body,
      headers: { 'X-Requested-With': 'fetch' }
    }).then(function (resp) {
      return resp.text().then(function (text) {
        if (!resp.ok) { throw new Error(text); }
        container.innerHTML = text;
      });
    });
  }

  document.querySelectorAll('[data-dismiss]').forEach(function (el) {
    el.addEventListener('click', function (e) { e.preventDefault(); dismiss(); });
  });

  form.addEventListener('submit', function (e) {
    e.preventDefault();
    post(form.action, new FormData(form)).then(dismiss).catch(function (err) { alert(err.message); });
  });

  container.addEventListener('submit', function (e) {
    var f = e.target;
    e.preventDefault();
    var body = new FormData(f);
    var question = f.getAttribute('data-confirm');
    if (question) {
      if (!window.confirm(question)) {
        return;
      }
      body.append('confirm', 'yes');
    }
    post(f.action, body).catch(function (err) { alert(err.message); });
  });

  function connect() {
    var scheme = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var ws = new WebSocket(scheme + location.host + '/ws');
    ws.onmessage = function (msg) { container.innerHTML = msg.data; };
    ws.onclose = function () { setTimeout(connect, 2000); };
  }
  connect();
})();
</script>
</body>
</html>
{{end}}`
