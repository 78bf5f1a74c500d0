// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fixtures

// Canned API payloads served by the practice server. The shapes follow the
// public endpoints the sources package talks to.

const ProvincesJSON = `[
  {"id": "11", "name": "ACEH"},
  {"id": "12", "name": "SUMATERA UTARA"},
  {"id": "13", "name": "SUMATERA BARAT"},
  {"id": "31", "name": "DKI JAKARTA"},
  {"id": "32", "name": "JAWA BARAT"},
  {"id": "33", "name": "JAWA TENGAH"}
]`

const EarthquakesXML = `<?xml version="1.0" encoding="UTF-8"?>
<Infogempa>
  <gempa>
    <Tanggal>19 Okt 2026</Tanggal>
    <Jam>10:21:33 WIB</Jam>
    <DateTime>2026-10-19T03:21:33+00:00</DateTime>
    <Coordinates>-7.81,107.46</Coordinates>
    <Lintang>7.81 LS</Lintang>
    <Bujur>107.46 BT</Bujur>
    <Magnitude>5.1</Magnitude>
    <Kedalaman>10 km</Kedalaman>
    <Wilayah>78 km BaratDaya KAB-GARUT-JABAR</Wilayah>
    <Potensi>Tidak berpotensi tsunami</Potensi>
  </gempa>
  <gempa>
    <Tanggal>18 Okt 2026</Tanggal>
    <Jam>22:04:10 WIB</Jam>
    <DateTime>2026-10-18T15:04:10+00:00</DateTime>
    <Coordinates>-3.62,128.19</Coordinates>
    <Lintang>3.62 LS</Lintang>
    <Bujur>128.19 BT</Bujur>
    <Magnitude>5.4</Magnitude>
    <Kedalaman>25 km</Kedalaman>
    <Wilayah>12 km TimurLaut AMBON-MALUKU</Wilayah>
    <Potensi>Tidak berpotensi tsunami</Potensi>
  </gempa>
</Infogempa>`

const ProductsJSON = `[
  {"id": 1, "title": "Fjallraven - Foldsack No. 1 Backpack", "price": 109.95, "category": "men's clothing"},
  {"id": 2, "title": "Mens Casual Premium Slim Fit T-Shirts", "price": 22.3, "category": "men's clothing"},
  {"id": 3, "title": "Mens Cotton Jacket", "price": 55.99, "category": "men's clothing"}
]`

const ExchangeRateJSON = `{"success": true, "base": "USD", "rates": {"IDR": 16250.5}}`

const CovidJSON = `[{"name": "Indonesia", "positif": "6,829,221", "sembuh": "6,651,362", "meninggal": "161,879", "dirawat": "15,980"}]`
