// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

package output

const htmlTemplate = `<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Peta Potensi &amp; Realisasi Kabupaten Bogor</title>
{{if .HasMap}}<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>{{end}}
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --table-alt: #f1f3f5; --hover: #e9ecef; --muted: #6c757d;
  --good: #28a745; --fair: #ffc107; --poor: #dc3545; --none: #e0e0e0;
  --accent: #0d6efd;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057;
    --table-alt: #0f3460; --hover: #1a1a4e; --muted: #adb5bd;
    --good: #4caf50; --fair: #ffc107; --poor: #f55; --none: #495057;
    --accent: #5b9aff;
  }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 1400px; margin: 0 auto; }
header { margin-bottom: 1.5rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p { color: var(--muted); font-size: .875rem; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: .75rem; margin-bottom: 1.5rem; }
.card { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: .75rem; text-align: center; }
.card .value { font-size: 1.5rem; font-weight: 700; }
.card .label { font-size: .75rem; color: var(--muted); text-transform: uppercase; }
#map { height: 480px; border: 1px solid var(--border); border-radius: 8px; margin-bottom: 1.5rem; }
.chart-box { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; margin-bottom: 1.5rem; }
.chart-box h3 { font-size: .875rem; margin-bottom: .5rem; }
.hbar { display: flex; align-items: center; gap: .5rem; margin: .25rem 0; font-size: .8125rem; }
.hbar .name { width: 160px; text-align: right; overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }
.hbar .track { flex: 1; background: var(--table-alt); border-radius: 3px; height: 16px; }
.hbar .fill { height: 100%; border-radius: 3px; }
.hbar .pct { width: 60px; }
table { width: 100%; border-collapse: collapse; font-size: .8125rem; }
thead { position: sticky; top: 0; background: var(--card-bg); }
th, td { padding: .5rem .625rem; text-align: left; border-bottom: 1px solid var(--border); }
td.num, th.num { text-align: right; font-variant-numeric: tabular-nums; }
tr:nth-child(even) { background: var(--table-alt); }
tr:hover { background: var(--hover); }
.bar-cell { min-width: 120px; }
.bar-track { background: var(--table-alt); border-radius: 3px; height: 12px; }
.bar-fill { height: 100%; border-radius: 3px; }
.unmatched, .warnings { margin-top: 1rem; font-size: .8125rem; color: var(--muted); }
.warnings li { color: var(--fair); }
footer { margin-top: 1.5rem; font-size: .75rem; color: var(--muted); }
</style>
</head>
<body>
<header>
  <h1>Peta Potensi &amp; Realisasi Kabupaten Bogor</h1>
  <p>Generated {{.GeneratedAt}} &middot; {{.Matched}}/{{.FeatureCount}} kecamatan matched</p>
</header>

<section class="cards" id="summary">
  <div class="card"><div class="value">{{.TotalPotensi}}</div><div class="label">Total Potensi</div></div>
  <div class="card"><div class="value">{{.TotalRealisasi}}</div><div class="label">Total Realisasi</div></div>
  <div class="card"><div class="value">{{.TotalSisa}}</div><div class="label">Total Sisa</div></div>
  <div class="card"><div class="value" style="color:{{.CapaianColor}}">{{.Capaian}}</div><div class="label">Capaian</div></div>
</section>

{{if .HasMap}}<div id="map"></div>{{end}}

<section class="chart-box">
<h3>Capaian Tertinggi</h3>
{{range .Rows}}{{if le .Rank 10}}
<div class="hbar">
  <span class="name">{{.Kecamatan}}</span>
  <div class="track"><div class="fill" style="width:{{.BarWidth}};background:{{.BarColor}}"></div></div>
  <span class="pct">{{.Persen}}</span>
</div>
{{end}}{{end}}
</section>

<section id="monitoring">
<table>
<thead><tr>
  <th class="num">#</th>
  <th>Kecamatan</th>
  <th class="num">Potensi</th>
  <th class="num">Realisasi</th>
  <th class="num">Sisa</th>
  <th class="num">Capaian</th>
  <th class="bar-cell"></th>
</tr></thead>
<tbody>
{{range .Rows}}
<tr>
  <td class="num">{{.Rank}}</td>
  <td>{{.Kecamatan}}</td>
  <td class="num">{{.Potensi}}</td>
  <td class="num">{{.Realisasi}}</td>
  <td class="num">{{.Sisa}}</td>
  <td class="num">{{.Persen}}</td>
  <td class="bar-cell"><div class="bar-track"><div class="bar-fill" style="width:{{.BarWidth}};background:{{.BarColor}}"></div></div></td>
</tr>
{{end}}
</tbody>
</table>
</section>

{{if .Unmatched}}
<div class="unmatched">Belum ada data: {{range $i, $n := .Unmatched}}{{if $i}}, {{end}}{{$n}}{{end}}</div>
{{end}}
{{if .Warnings}}
<ul class="warnings">
{{range .Warnings}}<li>{{.}}</li>{{end}}
</ul>
{{end}}

<footer>Run {{.RunID}}</footer>

{{if .HasMap}}
<script>
var mapData = {{json .MapData}};
var map = L.map('map');
L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
  attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
var layer = L.geoJSON(mapData.geojson, {
  style: function (feature) {
    var s = mapData.styles[mapData.geojson.features.indexOf(feature)] || {};
    return {
      fillColor: s.fillColor,
      fillOpacity: s.fillOpacity,
      color: s.color,
      weight: s.weight
    };
  },
  onEachFeature: function (feature, lyr) {
    var i = mapData.geojson.features.indexOf(feature);
    var s = mapData.styles[i] || {};
    var html = '<b>' + s.name + '</b>';
    if (s.matched) {
      var pct = s.persentase.toFixed(1);
      html += '<br>Potensi: ' + s.potensi.toLocaleString('id-ID');
      html += '<br>Realisasi: ' + s.realisasi.toLocaleString('id-ID');
      html += '<br>Sisa: ' + s.sisa.toLocaleString('id-ID');
      html += '<br>Capaian: <span style="color:' + s.progressColor + '">' + pct + '%</span>';
      html += '<div style="background:#eee;border-radius:3px;height:10px;margin-top:4px">' +
        '<div style="width:' + Math.min(pct, 100) + '%;background:' + s.progressColor + ';height:100%;border-radius:3px"></div></div>';
    } else {
      html += '<br>Belum ada data';
    }
    lyr.bindPopup(html);
  }
}).addTo(map);
map.fitBounds(layer.getBounds());
</script>
{{end}}
</body>
</html>
`
