package web

const pageHTML = `<!doctype html>
<html lang="ko">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>서비스 요금 계산기</title>
  {{with .Result}}{{if .OK}}<meta name="description" content="최종 요금: {{.FeeText}}">{{end}}{{end}}
  <style>
    * { box-sizing: border-box; }
    body { font-family: system-ui, "Apple SD Gothic Neo", "Malgun Gothic", sans-serif; margin: 0; padding: 24px; max-width: 820px; }
    h2 { margin-top: 0; font-weight: 600; }
    h3 { font-size: 1em; font-weight: 600; color: #444; margin: 0 0 12px 0; }
    .services { display: flex; gap: 20px; margin-bottom: 16px; }
    .section { border: 1px solid #e0e0e0; border-radius: 10px; padding: 16px; margin-bottom: 16px; }
    .section.hidden { display: none; }
    .grid { display: grid; grid-template-columns: 1fr 1fr; gap: 0 32px; }
    @media (max-width: 640px) { .grid { grid-template-columns: 1fr; } }
    .field { margin-bottom: 12px; }
    .field label { display: block; font-weight: 500; color: #333; margin-bottom: 4px; font-size: 0.95em; }
    .field input[type="date"], .field input[type="time"], .field input[type="number"] { padding: 8px 10px; font-size: 1em; border: 1px solid #ccc; border-radius: 6px; }
    .check { margin: 6px 0; }
    button[type="submit"] { padding: 10px 20px; font-size: 1em; background: #1976d2; color: #fff; border: none; border-radius: 6px; cursor: pointer; }
    button[type="submit"]:hover { background: #1565c0; }
    .err { color: #b00020; margin: 12px 0; padding: 10px; background: #ffebee; border-radius: 6px; }
    .ok { color: #1b5e20; margin: 12px 0; padding: 10px; background: #e8f5e9; border-radius: 6px; font-weight: 600; }
    pre.summary { background: #fafafa; border: 1px solid #eee; border-radius: 6px; padding: 12px; white-space: pre-wrap; }
    table { border-collapse: collapse; width: 100%; }
    td { padding: 6px 10px; border-top: 1px solid #eee; }
    td.n { text-align: right; font-variant-numeric: tabular-nums; }
    footer { margin-top: 40px; color: #666; font-size: 0.9em; text-align: center; }
  </style>
</head>
<body>
  <h2>서비스 요금 계산기</h2>

  <form method="POST" action="/calc">
    <div class="services">
      <label><input type="radio" name="service" value="hoteling" {{if .IsHoteling}}checked{{end}}> 호텔링</label>
      <label><input type="radio" name="service" value="daycare" {{if not .IsHoteling}}checked{{end}}> 데이케어</label>
    </div>

    <div class="section{{if not .IsHoteling}} hidden{{end}}" id="hoteling">
      <h3>애견호텔 (1박 30,000원, 24시간 초과 3시간 이후 +10,000원)</h3>
      <div class="grid">
        <div>
          <div class="field"><label for="checkin_date">입실 날짜</label><input id="checkin_date" name="checkin_date" type="date" value="{{.CheckInDate}}"></div>
          <div class="field"><label for="checkin_time">입실 시간</label><input id="checkin_time" name="checkin_time" type="time" value="{{.CheckInTime}}"></div>
        </div>
        <div>
          <div class="field"><label for="checkout_date">퇴실 날짜</label><input id="checkout_date" name="checkout_date" type="date" value="{{.CheckOutDate}}"></div>
          <div class="field"><label for="checkout_time">퇴실 시간</label><input id="checkout_time" name="checkout_time" type="time" value="{{.CheckOutTime}}"></div>
        </div>
      </div>
      <div class="check"><label><input type="checkbox" name="bath" value="true" {{if .Bath}}checked{{end}}> 목욕 (마리당 20,000원 추가)</label></div>
    </div>

    <div class="section{{if .IsHoteling}} hidden{{end}}" id="daycare">
      <h3>데이케어 (3시간 이하=10,000원, 6시간 이하=15,000원, 6시간 초과=20,000원)</h3>
      <div class="field"><label for="date">이용 날짜</label><input id="date" name="date" type="date" value="{{.DaycareDate}}"></div>
      <div class="grid">
        <div class="field"><label for="start_time">시작 시간</label><input id="start_time" name="start_time" type="time" value="{{.StartTime}}"></div>
        <div class="field"><label for="end_time">종료 시간</label><input id="end_time" name="end_time" type="time" value="{{.EndTime}}"></div>
      </div>
    </div>

    <div class="section">
      <div class="field"><label for="count">마리 수</label><input id="count" name="count" type="number" min="1" max="{{.MaxAnimals}}" value="{{.Count}}"></div>
      <div class="check"><label><input type="checkbox" name="diaper" value="true" {{if .Diaper}}checked{{end}}> 기저귀 필요 (호텔링 1박당 / 데이케어 1일 2,000원)</label></div>
    </div>

    <button type="submit">계산하기</button>
  </form>

  {{if .Error}}<div class="err">{{.Error}}</div>{{end}}

  {{with .Result}}
    <h3 style="margin-top:24px">이용기간 안내</h3>
    <pre class="summary">{{.Summary}}</pre>
    {{if .OK}}
      {{with .Breakdown}}
      <table>
        <tr><td>기본 요금{{if .Tier}} ({{.Tier}}){{end}}</td><td class="n">{{won .Base}}</td></tr>
        {{if .Surcharge}}<tr><td>추가 요금</td><td class="n">{{won .Surcharge}}</td></tr>{{end}}
        {{if .Diaper}}<tr><td>기저귀</td><td class="n">{{won .Diaper}}</td></tr>{{end}}
        {{if .Bath}}<tr><td>목욕</td><td class="n">{{won .Bath}}</td></tr>{{end}}
        {{if gt .Multiplier 1}}<tr><td>마릿수 곱 (x{{.Multiplier}})</td><td class="n">{{won .Gross}}</td></tr>{{end}}
        {{if .Discount}}<tr><td>다두 할인 (10%)</td><td class="n">-{{won .Discount}}</td></tr>{{end}}
      </table>
      {{end}}
      <div class="ok">{{.Banner}}</div>
    {{else}}
      <div class="err">{{.Banner}}</div>
    {{end}}
  {{end}}

  <script>
(function() {
  document.querySelectorAll('input[name="service"]').forEach(function(radio) {
    radio.addEventListener('change', function() {
      var daycare = radio.value === 'daycare' && radio.checked;
      document.getElementById('hoteling').classList.toggle('hidden', daycare);
      document.getElementById('daycare').classList.toggle('hidden', !daycare);
    });
  });
})();
  </script>

  <footer>staycalc v{{.Version}}</footer>
</body>
</html>`
