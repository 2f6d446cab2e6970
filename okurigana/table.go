package okurigana

// conjugations lists the inflected endings per part of speech. An entry with a
// euphonic prefix is also reachable through that prefix, e.g. the し of してた.
var conjugations = []conjugation{
	{AdjI, "い", ""},
	{AdjI, "くない", ""},
	{AdjI, "くないです", ""},
	{AdjI, "くありません", ""},
	{AdjI, "かった", ""},
	{AdjI, "かったです", ""},
	{AdjI, "くなかった", ""},
	{AdjI, "くありませんでした", ""},
	{AdjI, "く", ""},
	{AdjI, "くて", ""},
	{AdjI, "くなくて", ""},
	{AdjI, "ければ", ""},
	{AdjI, "くなければ", ""},
	{AdjI, "くさせる", ""},
	{AdjI, "かろう", ""},
	{AdjI, "かったら", ""},
	{AdjI, "くなかったら", ""},
	{AdjI, "かったり", ""},
	{AdjI, "さ", ""},
	{AdjI, "", ""},

	{AdjNa, "だ", ""},

	{AdjIx, "い", ""},

	{Ichidan, "る", ""},
	{Ichidan, "ます", ""},
	{Ichidan, "ない", ""},
	{Ichidan, "ません", ""},
	{Ichidan, "た", ""},
	{Ichidan, "ました", ""},
	{Ichidan, "なかった", ""},
	{Ichidan, "ませんでした", ""},
	{Ichidan, "て", ""},
	{Ichidan, "まして", ""},
	{Ichidan, "なくて", ""},
	{Ichidan, "ないで", ""},
	{Ichidan, "ませんで", ""},
	{Ichidan, "れば", ""},
	{Ichidan, "なければ", ""},
	{Ichidan, "られて", ""},
	{Ichidan, "れる", ""},
	{Ichidan, "られます", ""},
	{Ichidan, "れます", ""},
	{Ichidan, "られない", ""},
	{Ichidan, "れない", ""},
	{Ichidan, "られません", ""},
	{Ichidan, "れません", ""},
	{Ichidan, "られる", ""},
	{Ichidan, "られます", ""},
	{Ichidan, "られない", ""},
	{Ichidan, "られません", ""},
	{Ichidan, "させる", ""},
	{Ichidan, "さす", ""},
	{Ichidan, "させます", ""},
	{Ichidan, "さします", ""},
	{Ichidan, "させない", ""},
	{Ichidan, "ささない", ""},
	{Ichidan, "させません", ""},
	{Ichidan, "さしません", ""},
	{Ichidan, "させられる", ""},
	{Ichidan, "させられます", ""},
	{Ichidan, "させられない", ""},
	{Ichidan, "させられません", ""},
	{Ichidan, "よう", ""},
	{Ichidan, "ましょう", ""},
	{Ichidan, "まい", ""},
	{Ichidan, "ますまい", ""},
	{Ichidan, "ろ", ""},
	{Ichidan, "なさい", ""},
	{Ichidan, "るな", ""},
	{Ichidan, "なさるな", ""},
	{Ichidan, "たら", ""},
	{Ichidan, "ましたら", ""},
	{Ichidan, "なかったら", ""},
	{Ichidan, "ませんでしたら", ""},
	{Ichidan, "たり", ""},
	{Ichidan, "ましたり", ""},
	{Ichidan, "なかったり", ""},
	{Ichidan, "ませんでしたり", ""},

	{IchidanKureru, "る", ""},
	{IchidanKureru, "ます", ""},
	{IchidanKureru, "ない", ""},
	{IchidanKureru, "ません", ""},
	{IchidanKureru, "た", ""},
	{IchidanKureru, "ました", ""},
	{IchidanKureru, "なかった", ""},
	{IchidanKureru, "ませんでした", ""},
	{IchidanKureru, "て", ""},
	{IchidanKureru, "まして", ""},
	{IchidanKureru, "なくて", ""},
	{IchidanKureru, "ないで", ""},
	{IchidanKureru, "ませんで", ""},
	{IchidanKureru, "れば", ""},
	{IchidanKureru, "なければ", ""},
	{IchidanKureru, "られる", ""},
	{IchidanKureru, "れる", ""},
	{IchidanKureru, "られます", ""},
	{IchidanKureru, "れます", ""},
	{IchidanKureru, "られない", ""},
	{IchidanKureru, "れない", ""},
	{IchidanKureru, "られません", ""},
	{IchidanKureru, "れません", ""},
	{IchidanKureru, "られる", ""},
	{IchidanKureru, "られます", ""},
	{IchidanKureru, "られない", ""},
	{IchidanKureru, "られません", ""},
	{IchidanKureru, "させる", ""},
	{IchidanKureru, "さす", ""},
	{IchidanKureru, "させます", ""},
	{IchidanKureru, "さします", ""},
	{IchidanKureru, "させない", ""},
	{IchidanKureru, "ささない", ""},
	{IchidanKureru, "させません", ""},
	{IchidanKureru, "さしません", ""},
	{IchidanKureru, "させられる", ""},
	{IchidanKureru, "させられます", ""},
	{IchidanKureru, "させられない", ""},
	{IchidanKureru, "させられません", ""},
	{IchidanKureru, "よう", ""},
	{IchidanKureru, "ましょう", ""},
	{IchidanKureru, "まい", ""},
	{IchidanKureru, "ますまい", ""},
	{IchidanKureru, "なさい", ""},
	{IchidanKureru, "るな", ""},
	{IchidanKureru, "なさるな", ""},
	{IchidanKureru, "たら", ""},
	{IchidanKureru, "ましたら", ""},
	{IchidanKureru, "なかったら", ""},
	{IchidanKureru, "ませんでしたら", ""},
	{IchidanKureru, "たり", ""},
	{IchidanKureru, "ましたり", ""},
	{IchidanKureru, "なかったり", ""},
	{IchidanKureru, "ませんでしたり", ""},

	{GodanAru, "る", ""},
	{GodanAru, "います", ""},
	{GodanAru, "らない", ""},
	{GodanAru, "いません", ""},
	{GodanAru, "った", ""},
	{GodanAru, "いました", ""},
	{GodanAru, "らなかった", ""},
	{GodanAru, "いませんでした", ""},
	{GodanAru, "って", ""},
	{GodanAru, "いまして", ""},
	{GodanAru, "らなくて", ""},
	{GodanAru, "らないで", ""},
	{GodanAru, "いませんで", ""},
	{GodanAru, "れば", ""},
	{GodanAru, "らなければ", ""},
	{GodanAru, "れる", ""},
	{GodanAru, "れます", ""},
	{GodanAru, "れない", ""},
	{GodanAru, "れません", ""},
	{GodanAru, "られる", ""},
	{GodanAru, "られます", ""},
	{GodanAru, "られない", ""},
	{GodanAru, "られません", ""},
	{GodanAru, "らせる", ""},
	{GodanAru, "らす", ""},
	{GodanAru, "らせます", ""},
	{GodanAru, "らします", ""},
	{GodanAru, "らせない", ""},
	{GodanAru, "らさない", ""},
	{GodanAru, "らせません", ""},
	{GodanAru, "らしません", ""},
	{GodanAru, "らせられる", ""},
	{GodanAru, "らされる", ""},
	{GodanAru, "らせられます", ""},
	{GodanAru, "らされます", ""},
	{GodanAru, "らせられない", ""},
	{GodanAru, "らされない", ""},
	{GodanAru, "らせられません", ""},
	{GodanAru, "らされません", ""},
	{GodanAru, "ろう", ""},
	{GodanAru, "いましょう", ""},
	{GodanAru, "るまい", ""},
	{GodanAru, "いませんまい", ""},
	{GodanAru, "い", ""},
	{GodanAru, "いなさい", ""},
	{GodanAru, "るな", ""},
	{GodanAru, "いなさるな", ""},
	{GodanAru, "ったら", ""},
	{GodanAru, "いましたら", ""},
	{GodanAru, "らなかったら", ""},
	{GodanAru, "いませんでしたら", ""},
	{GodanAru, "ったり", ""},
	{GodanAru, "いましたり", ""},
	{GodanAru, "らなかったり", ""},
	{GodanAru, "いませんでしたり", ""},
	{GodanAru, "い", ""},

	{GodanBu, "ぶ", ""},
	{GodanBu, "びます", ""},
	{GodanBu, "ばない", ""},
	{GodanBu, "びません", ""},
	{GodanBu, "んだ", ""},
	{GodanBu, "びました", ""},
	{GodanBu, "ばなかった", ""},
	{GodanBu, "びませんでした", ""},
	{GodanBu, "んで", ""},
	{GodanBu, "びまして", ""},
	{GodanBu, "ばなくて", ""},
	{GodanBu, "ばないで", ""},
	{GodanBu, "びませんで", ""},
	{GodanBu, "べば", ""},
	{GodanBu, "ばなければ", ""},
	{GodanBu, "べる", ""},
	{GodanBu, "べます", ""},
	{GodanBu, "べない", ""},
	{GodanBu, "べません", ""},
	{GodanBu, "ばれる", ""},
	{GodanBu, "ばれます", ""},
	{GodanBu, "ばれない", ""},
	{GodanBu, "ばれません", ""},
	{GodanBu, "ばせる", ""},
	{GodanBu, "ばす", ""},
	{GodanBu, "ばせます", ""},
	{GodanBu, "ばします", ""},
	{GodanBu, "ばせない", ""},
	{GodanBu, "ばさない", ""},
	{GodanBu, "ばせません", ""},
	{GodanBu, "ばしません", ""},
	{GodanBu, "ばせられる", ""},
	{GodanBu, "ばされる", ""},
	{GodanBu, "ばせられます", ""},
	{GodanBu, "ばされます", ""},
	{GodanBu, "ばせられない", ""},
	{GodanBu, "ばされない", ""},
	{GodanBu, "ばせられません", ""},
	{GodanBu, "ばされません", ""},
	{GodanBu, "ぼう", ""},
	{GodanBu, "びましょう", ""},
	{GodanBu, "ぶまい", ""},
	{GodanBu, "びませんまい", ""},
	{GodanBu, "べ", ""},
	{GodanBu, "びなさい", ""},
	{GodanBu, "ぶな", ""},
	{GodanBu, "びなさるな", ""},
	{GodanBu, "んだら", ""},
	{GodanBu, "びましたら", ""},
	{GodanBu, "ばなかったら", ""},
	{GodanBu, "びませんでしたら", ""},
	{GodanBu, "んだり", ""},
	{GodanBu, "びましたり", ""},
	{GodanBu, "ばなかったり", ""},
	{GodanBu, "びませんでしたり", ""},
	{GodanBu, "び", ""},

	{GodanGu, "ぐ", ""},
	{GodanGu, "ぎます", ""},
	{GodanGu, "がない", ""},
	{GodanGu, "ぎません", ""},
	{GodanGu, "いだ", ""},
	{GodanGu, "ぎました", ""},
	{GodanGu, "がなかった", ""},
	{GodanGu, "ぎませんでした", ""},
	{GodanGu, "いで", ""},
	{GodanGu, "ぎまして", ""},
	{GodanGu, "がなくて", ""},
	{GodanGu, "がないで", ""},
	{GodanGu, "ぎませんで", ""},
	{GodanGu, "げば", ""},
	{GodanGu, "がなければ", ""},
	{GodanGu, "げる", ""},
	{GodanGu, "げます", ""},
	{GodanGu, "げない", ""},
	{GodanGu, "げません", ""},
	{GodanGu, "がれる", ""},
	{GodanGu, "がれます", ""},
	{GodanGu, "がれない", ""},
	{GodanGu, "がれません", ""},
	{GodanGu, "がせる", ""},
	{GodanGu, "がす", ""},
	{GodanGu, "がせます", ""},
	{GodanGu, "がします", ""},
	{GodanGu, "がせない", ""},
	{GodanGu, "がさない", ""},
	{GodanGu, "がせません", ""},
	{GodanGu, "がしません", ""},
	{GodanGu, "がせられる", ""},
	{GodanGu, "がされる", ""},
	{GodanGu, "がせられます", ""},
	{GodanGu, "がされます", ""},
	{GodanGu, "がせられない", ""},
	{GodanGu, "がされない", ""},
	{GodanGu, "がせられません", ""},
	{GodanGu, "がされません", ""},
	{GodanGu, "ごう", ""},
	{GodanGu, "ぎましょう", ""},
	{GodanGu, "ぐまい", ""},
	{GodanGu, "ぎませんまい", ""},
	{GodanGu, "げ", ""},
	{GodanGu, "ぎなさい", ""},
	{GodanGu, "ぐな", ""},
	{GodanGu, "ぎなさるな", ""},
	{GodanGu, "いだら", ""},
	{GodanGu, "ぎましたら", ""},
	{GodanGu, "がなかったら", ""},
	{GodanGu, "ぎませんでしたら", ""},
	{GodanGu, "いだり", ""},
	{GodanGu, "ぎましたり", ""},
	{GodanGu, "がなかったり", ""},
	{GodanGu, "ぎませんでしたり", ""},
	{GodanGu, "ぎ", ""},

	{GodanKu, "く", ""},
	{GodanKu, "きます", ""},
	{GodanKu, "かない", ""},
	{GodanKu, "きません", ""},
	{GodanKu, "いた", ""},
	{GodanKu, "きました", ""},
	{GodanKu, "かなかった", ""},
	{GodanKu, "きませんでした", ""},
	{GodanKu, "いて", ""},
	{GodanKu, "きまして", ""},
	{GodanKu, "かなくて", ""},
	{GodanKu, "かないで", ""},
	{GodanKu, "きませんで", ""},
	{GodanKu, "けば", ""},
	{GodanKu, "かなければ", ""},
	{GodanKu, "ける", ""},
	{GodanKu, "けます", ""},
	{GodanKu, "けない", ""},
	{GodanKu, "けません", ""},
	{GodanKu, "かれる", ""},
	{GodanKu, "かれます", ""},
	{GodanKu, "かれない", ""},
	{GodanKu, "かれません", ""},
	{GodanKu, "かせる", ""},
	{GodanKu, "かす", ""},
	{GodanKu, "かせます", ""},
	{GodanKu, "かします", ""},
	{GodanKu, "かせない", ""},
	{GodanKu, "かさない", ""},
	{GodanKu, "かせません", ""},
	{GodanKu, "かしません", ""},
	{GodanKu, "かせられる", ""},
	{GodanKu, "かされる", ""},
	{GodanKu, "かせられます", ""},
	{GodanKu, "かされます", ""},
	{GodanKu, "かせられない", ""},
	{GodanKu, "かされない", ""},
	{GodanKu, "かせられません", ""},
	{GodanKu, "かされません", ""},
	{GodanKu, "こう", ""},
	{GodanKu, "きましょう", ""},
	{GodanKu, "くまい", ""},
	{GodanKu, "きませんまい", ""},
	{GodanKu, "け", ""},
	{GodanKu, "きなさい", ""},
	{GodanKu, "くな", ""},
	{GodanKu, "きなさるな", ""},
	{GodanKu, "いたら", ""},
	{GodanKu, "きましたら", ""},
	{GodanKu, "かなかったら", ""},
	{GodanKu, "きませんでしたら", ""},
	{GodanKu, "いたり", ""},
	{GodanKu, "きましたり", ""},
	{GodanKu, "かなかったり", ""},
	{GodanKu, "きませんでしたり", ""},
	{GodanKu, "き", ""},

	{GodanIku, "く", ""},
	{GodanIku, "きます", ""},
	{GodanIku, "かない", ""},
	{GodanIku, "きません", ""},
	{GodanIku, "った", ""},
	{GodanIku, "きました", ""},
	{GodanIku, "かなかった", ""},
	{GodanIku, "きませんでした", ""},
	{GodanIku, "って", ""},
	{GodanIku, "きまして", ""},
	{GodanIku, "かなくて", ""},
	{GodanIku, "かないで", ""},
	{GodanIku, "きませんで", ""},
	{GodanIku, "けば", ""},
	{GodanIku, "かなければ", ""},
	{GodanIku, "ける", ""},
	{GodanIku, "けます", ""},
	{GodanIku, "けない", ""},
	{GodanIku, "けません", ""},
	{GodanIku, "かれる", ""},
	{GodanIku, "かれます", ""},
	{GodanIku, "かれない", ""},
	{GodanIku, "かれません", ""},
	{GodanIku, "かせる", ""},
	{GodanIku, "かす", ""},
	{GodanIku, "かせます", ""},
	{GodanIku, "かします", ""},
	{GodanIku, "かせない", ""},
	{GodanIku, "かさない", ""},
	{GodanIku, "かせません", ""},
	{GodanIku, "かしません", ""},
	{GodanIku, "かせられる", ""},
	{GodanIku, "かされる", ""},
	{GodanIku, "かせられます", ""},
	{GodanIku, "かされます", ""},
	{GodanIku, "かせられない", ""},
	{GodanIku, "かされない", ""},
	{GodanIku, "かせられません", ""},
	{GodanIku, "かされません", ""},
	{GodanIku, "こう", ""},
	{GodanIku, "きましょう", ""},
	{GodanIku, "くまい", ""},
	{GodanIku, "きませんまい", ""},
	{GodanIku, "け", ""},
	{GodanIku, "きなさい", ""},
	{GodanIku, "くな", ""},
	{GodanIku, "きなさるな", ""},
	{GodanIku, "ったら", ""},
	{GodanIku, "きましたら", ""},
	{GodanIku, "かなかったら", ""},
	{GodanIku, "きませんでしたら", ""},
	{GodanIku, "ったり", ""},
	{GodanIku, "きましたり", ""},
	{GodanIku, "かなかったり", ""},
	{GodanIku, "きませんでしたり", ""},
	{GodanIku, "き", ""},

	{GodanMu, "む", ""},
	{GodanMu, "みます", ""},
	{GodanMu, "まない", ""},
	{GodanMu, "みません", ""},
	{GodanMu, "んだ", ""},
	{GodanMu, "みました", ""},
	{GodanMu, "まなかった", ""},
	{GodanMu, "みませんでした", ""},
	{GodanMu, "んで", ""},
	{GodanMu, "みまして", ""},
	{GodanMu, "まなくて", ""},
	{GodanMu, "まないで", ""},
	{GodanMu, "みませんで", ""},
	{GodanMu, "めば", ""},
	{GodanMu, "まなければ", ""},
	{GodanMu, "める", ""},
	{GodanMu, "めます", ""},
	{GodanMu, "めない", ""},
	{GodanMu, "めません", ""},
	{GodanMu, "まれる", ""},
	{GodanMu, "まれた", ""},
	{GodanMu, "まれます", ""},
	{GodanMu, "まれない", ""},
	{GodanMu, "まれません", ""},
	{GodanMu, "ませる", ""},
	{GodanMu, "ます", ""},
	{GodanMu, "ませます", ""},
	{GodanMu, "まします", ""},
	{GodanMu, "ませない", ""},
	{GodanMu, "まさない", ""},
	{GodanMu, "ませません", ""},
	{GodanMu, "ましません", ""},
	{GodanMu, "ませられる", ""},
	{GodanMu, "まされる", ""},
	{GodanMu, "ませられます", ""},
	{GodanMu, "まされます", ""},
	{GodanMu, "ませられない", ""},
	{GodanMu, "まされない", ""},
	{GodanMu, "ませられません", ""},
	{GodanMu, "まされません", ""},
	{GodanMu, "もう", ""},
	{GodanMu, "みましょう", ""},
	{GodanMu, "むまい", ""},
	{GodanMu, "みませんまい", ""},
	{GodanMu, "め", ""},
	{GodanMu, "みなさい", ""},
	{GodanMu, "むな", ""},
	{GodanMu, "みなさるな", ""},
	{GodanMu, "んだら", ""},
	{GodanMu, "みましたら", ""},
	{GodanMu, "まなかったら", ""},
	{GodanMu, "みませんでしたら", ""},
	{GodanMu, "んだり", ""},
	{GodanMu, "みましたり", ""},
	{GodanMu, "まなかったり", ""},
	{GodanMu, "みませんでしたり", ""},
	{GodanMu, "み", ""},

	{GodanNu, "ぬ", ""},
	{GodanNu, "にます", ""},
	{GodanNu, "なない", ""},
	{GodanNu, "にません", ""},
	{GodanNu, "んだ", ""},
	{GodanNu, "にました", ""},
	{GodanNu, "ななかった", ""},
	{GodanNu, "にませんでした", ""},
	{GodanNu, "んで", ""},
	{GodanNu, "にまして", ""},
	{GodanNu, "ななくて", ""},
	{GodanNu, "なないで", ""},
	{GodanNu, "にませんで", ""},
	{GodanNu, "ねば", ""},
	{GodanNu, "ななければ", ""},
	{GodanNu, "ねる", ""},
	{GodanNu, "ねます", ""},
	{GodanNu, "ねない", ""},
	{GodanNu, "ねません", ""},
	{GodanNu, "なれる", ""},
	{GodanNu, "なれます", ""},
	{GodanNu, "なれない", ""},
	{GodanNu, "なれません", ""},
	{GodanNu, "なせる", ""},
	{GodanNu, "なす", ""},
	{GodanNu, "なせます", ""},
	{GodanNu, "なします", ""},
	{GodanNu, "なせない", ""},
	{GodanNu, "なさない", ""},
	{GodanNu, "なせません", ""},
	{GodanNu, "なしません", ""},
	{GodanNu, "なせられる", ""},
	{GodanNu, "なされる", ""},
	{GodanNu, "なせられます", ""},
	{GodanNu, "なされます", ""},
	{GodanNu, "なせられない", ""},
	{GodanNu, "なされない", ""},
	{GodanNu, "なせられません", ""},
	{GodanNu, "なされません", ""},
	{GodanNu, "のう", ""},
	{GodanNu, "にましょう", ""},
	{GodanNu, "ぬまい", ""},
	{GodanNu, "にませんまい", ""},
	{GodanNu, "ね", ""},
	{GodanNu, "になさい", ""},
	{GodanNu, "ぬな", ""},
	{GodanNu, "になさるな", ""},
	{GodanNu, "んだら", ""},
	{GodanNu, "にましたら", ""},
	{GodanNu, "ななかったら", ""},
	{GodanNu, "にませんでしたら", ""},
	{GodanNu, "んだり", ""},
	{GodanNu, "にましたり", ""},
	{GodanNu, "ななかったり", ""},
	{GodanNu, "にませんでしたり", ""},
	{GodanNu, "に", ""},

	{GodanRu, "る", ""},
	{GodanRu, "ります", ""},
	{GodanRu, "らない", ""},
	{GodanRu, "りません", ""},
	{GodanRu, "った", ""},
	{GodanRu, "りました", ""},
	{GodanRu, "らなかった", ""},
	{GodanRu, "りませんでした", ""},
	{GodanRu, "って", ""},
	{GodanRu, "りまして", ""},
	{GodanRu, "らなくて", ""},
	{GodanRu, "らないで", ""},
	{GodanRu, "りませんで", ""},
	{GodanRu, "れば", ""},
	{GodanRu, "らなければ", ""},
	{GodanRu, "れる", ""},
	{GodanRu, "れます", ""},
	{GodanRu, "れない", ""},
	{GodanRu, "れません", ""},
	{GodanRu, "られる", ""},
	{GodanRu, "られます", ""},
	{GodanRu, "られない", ""},
	{GodanRu, "られません", ""},
	{GodanRu, "らせる", ""},
	{GodanRu, "らす", ""},
	{GodanRu, "らせます", ""},
	{GodanRu, "らします", ""},
	{GodanRu, "らせない", ""},
	{GodanRu, "らさない", ""},
	{GodanRu, "らせません", ""},
	{GodanRu, "らしません", ""},
	{GodanRu, "らせられる", ""},
	{GodanRu, "らされる", ""},
	{GodanRu, "らせられます", ""},
	{GodanRu, "らされます", ""},
	{GodanRu, "らせられない", ""},
	{GodanRu, "らされない", ""},
	{GodanRu, "らせられません", ""},
	{GodanRu, "らされません", ""},
	{GodanRu, "ろう", ""},
	{GodanRu, "りましょう", ""},
	{GodanRu, "るまい", ""},
	{GodanRu, "りませんまい", ""},
	{GodanRu, "れ", ""},
	{GodanRu, "りなさい", ""},
	{GodanRu, "るな", ""},
	{GodanRu, "りなさるな", ""},
	{GodanRu, "ったら", ""},
	{GodanRu, "りましたら", ""},
	{GodanRu, "らなかったら", ""},
	{GodanRu, "りませんでしたら", ""},
	{GodanRu, "ったり", ""},
	{GodanRu, "りましたり", ""},
	{GodanRu, "らなかったり", ""},
	{GodanRu, "りませんでしたり", ""},
	{GodanRu, "り", ""},

	{GodanRuIrregular, "る", ""},
	{GodanRuIrregular, "ります", ""},
	{GodanRuIrregular, "ない", ""},
	{GodanRuIrregular, "りません", ""},
	{GodanRuIrregular, "った", ""},
	{GodanRuIrregular, "りました", ""},
	{GodanRuIrregular, "なかった", ""},
	{GodanRuIrregular, "りませんでした", ""},
	{GodanRuIrregular, "って", ""},
	{GodanRuIrregular, "りまして", ""},
	{GodanRuIrregular, "なくて", ""},
	{GodanRuIrregular, "ないで", ""},
	{GodanRuIrregular, "りませんで", ""},
	{GodanRuIrregular, "れば", ""},
	{GodanRuIrregular, "なければ", ""},
	{GodanRuIrregular, "れる", ""},
	{GodanRuIrregular, "れます", ""},
	{GodanRuIrregular, "れない", ""},
	{GodanRuIrregular, "れません", ""},
	{GodanRuIrregular, "られる", ""},
	{GodanRuIrregular, "られます", ""},
	{GodanRuIrregular, "られない", ""},
	{GodanRuIrregular, "られません", ""},
	{GodanRuIrregular, "らせる", ""},
	{GodanRuIrregular, "らす", ""},
	{GodanRuIrregular, "らせます", ""},
	{GodanRuIrregular, "らします", ""},
	{GodanRuIrregular, "らせない", ""},
	{GodanRuIrregular, "らさない", ""},
	{GodanRuIrregular, "らせません", ""},
	{GodanRuIrregular, "らしません", ""},
	{GodanRuIrregular, "らせられる", ""},
	{GodanRuIrregular, "らされる", ""},
	{GodanRuIrregular, "らせられます", ""},
	{GodanRuIrregular, "らされます", ""},
	{GodanRuIrregular, "らせられない", ""},
	{GodanRuIrregular, "らされない", ""},
	{GodanRuIrregular, "らせられません", ""},
	{GodanRuIrregular, "らされません", ""},
	{GodanRuIrregular, "ろう", ""},
	{GodanRuIrregular, "りましょう", ""},
	{GodanRuIrregular, "るまい", ""},
	{GodanRuIrregular, "りませんまい", ""},
	{GodanRuIrregular, "れ", ""},
	{GodanRuIrregular, "りなさい", ""},
	{GodanRuIrregular, "るな", ""},
	{GodanRuIrregular, "りなさるな", ""},
	{GodanRuIrregular, "ったら", ""},
	{GodanRuIrregular, "りましたら", ""},
	{GodanRuIrregular, "なかったら", ""},
	{GodanRuIrregular, "りませんでしたら", ""},
	{GodanRuIrregular, "ったり", ""},
	{GodanRuIrregular, "りましたり", ""},
	{GodanRuIrregular, "なかったり", ""},
	{GodanRuIrregular, "りませんでしたり", ""},
	{GodanRuIrregular, "り", ""},

	{GodanSu, "す", ""},
	{GodanSu, "します", ""},
	{GodanSu, "さない", ""},
	{GodanSu, "しません", ""},
	{GodanSu, "した", ""},
	{GodanSu, "しました", ""},
	{GodanSu, "さなかった", ""},
	{GodanSu, "しませんでした", ""},
	{GodanSu, "して", ""},
	{GodanSu, "しまして", ""},
	{GodanSu, "さなくて", ""},
	{GodanSu, "さないで", ""},
	{GodanSu, "しませんで", ""},
	{GodanSu, "せば", ""},
	{GodanSu, "さなければ", ""},
	{GodanSu, "せる", ""},
	{GodanSu, "せます", ""},
	{GodanSu, "せない", ""},
	{GodanSu, "せません", ""},
	{GodanSu, "される", ""},
	{GodanSu, "されます", ""},
	{GodanSu, "されない", ""},
	{GodanSu, "されません", ""},
	{GodanSu, "させる", ""},
	{GodanSu, "さす", ""},
	{GodanSu, "させます", ""},
	{GodanSu, "さします", ""},
	{GodanSu, "させない", ""},
	{GodanSu, "ささない", ""},
	{GodanSu, "させません", ""},
	{GodanSu, "さしません", ""},
	{GodanSu, "させられる", ""},
	{GodanSu, "させられます", ""},
	{GodanSu, "させられない", ""},
	{GodanSu, "させられません", ""},
	{GodanSu, "そう", ""},
	{GodanSu, "しましょう", ""},
	{GodanSu, "すまい", ""},
	{GodanSu, "しませんまい", ""},
	{GodanSu, "せ", ""},
	{GodanSu, "しなさい", ""},
	{GodanSu, "すな", ""},
	{GodanSu, "しなさるな", ""},
	{GodanSu, "したら", ""},
	{GodanSu, "しましたら", ""},
	{GodanSu, "さなかったら", ""},
	{GodanSu, "しませんでしたら", ""},
	{GodanSu, "したり", ""},
	{GodanSu, "しましたり", ""},
	{GodanSu, "さなかったり", ""},
	{GodanSu, "しませんでしたり", ""},
	{GodanSu, "し", ""},

	{GodanTsu, "つ", ""},
	{GodanTsu, "ちます", ""},
	{GodanTsu, "たない", ""},
	{GodanTsu, "ちません", ""},
	{GodanTsu, "った", ""},
	{GodanTsu, "ちました", ""},
	{GodanTsu, "たなかった", ""},
	{GodanTsu, "ちませんでした", ""},
	{GodanTsu, "って", ""},
	{GodanTsu, "ちまして", ""},
	{GodanTsu, "たなくて", ""},
	{GodanTsu, "たないで", ""},
	{GodanTsu, "ちませんで", ""},
	{GodanTsu, "てば", ""},
	{GodanTsu, "たなければ", ""},
	{GodanTsu, "てる", ""},
	{GodanTsu, "てます", ""},
	{GodanTsu, "てない", ""},
	{GodanTsu, "てません", ""},
	{GodanTsu, "たれる", ""},
	{GodanTsu, "たれます", ""},
	{GodanTsu, "たれない", ""},
	{GodanTsu, "たれません", ""},
	{GodanTsu, "たせる", ""},
	{GodanTsu, "たす", ""},
	{GodanTsu, "たせます", ""},
	{GodanTsu, "たします", ""},
	{GodanTsu, "たせない", ""},
	{GodanTsu, "たさない", ""},
	{GodanTsu, "たせません", ""},
	{GodanTsu, "たしません", ""},
	{GodanTsu, "たせられる", ""},
	{GodanTsu, "たされる", ""},
	{GodanTsu, "たせられます", ""},
	{GodanTsu, "たされます", ""},
	{GodanTsu, "たせられない", ""},
	{GodanTsu, "たされない", ""},
	{GodanTsu, "たせられません", ""},
	{GodanTsu, "たされません", ""},
	{GodanTsu, "とう", ""},
	{GodanTsu, "ちましょう", ""},
	{GodanTsu, "つまい", ""},
	{GodanTsu, "ちませんまい", ""},
	{GodanTsu, "て", ""},
	{GodanTsu, "ちなさい", ""},
	{GodanTsu, "つな", ""},
	{GodanTsu, "ちなさるな", ""},
	{GodanTsu, "ったら", ""},
	{GodanTsu, "ちましたら", ""},
	{GodanTsu, "たなかったら", ""},
	{GodanTsu, "ちませんでしたら", ""},
	{GodanTsu, "ったり", ""},
	{GodanTsu, "ちましたり", ""},
	{GodanTsu, "たなかったり", ""},
	{GodanTsu, "ちませんでしたり", ""},
	{GodanTsu, "ち", ""},

	{GodanU, "う", ""},
	{GodanU, "います", ""},
	{GodanU, "わない", ""},
	{GodanU, "いません", ""},
	{GodanU, "った", ""},
	{GodanU, "いました", ""},
	{GodanU, "わなかった", ""},
	{GodanU, "いませんでした", ""},
	{GodanU, "って", ""},
	{GodanU, "いまして", ""},
	{GodanU, "わなくて", ""},
	{GodanU, "わないで", ""},
	{GodanU, "いませんで", ""},
	{GodanU, "えば", ""},
	{GodanU, "わなければ", ""},
	{GodanU, "える", ""},
	{GodanU, "えます", ""},
	{GodanU, "えない", ""},
	{GodanU, "えません", ""},
	{GodanU, "われる", ""},
	{GodanU, "われます", ""},
	{GodanU, "われない", ""},
	{GodanU, "われません", ""},
	{GodanU, "わせる", ""},
	{GodanU, "わす", ""},
	{GodanU, "わせます", ""},
	{GodanU, "わします", ""},
	{GodanU, "わせない", ""},
	{GodanU, "わさない", ""},
	{GodanU, "わせません", ""},
	{GodanU, "わしません", ""},
	{GodanU, "わせられる", ""},
	{GodanU, "わされる", ""},
	{GodanU, "わせられます", ""},
	{GodanU, "わされます", ""},
	{GodanU, "わせられない", ""},
	{GodanU, "わされない", ""},
	{GodanU, "わせられません", ""},
	{GodanU, "わされません", ""},
	{GodanU, "おう", ""},
	{GodanU, "いましょう", ""},
	{GodanU, "うまい", ""},
	{GodanU, "いませんまい", ""},
	{GodanU, "え", ""},
	{GodanU, "いなさい", ""},
	{GodanU, "うな", ""},
	{GodanU, "いなさるな", ""},
	{GodanU, "ったら", ""},
	{GodanU, "いましたら", ""},
	{GodanU, "わなかったら", ""},
	{GodanU, "いませんでしたら", ""},
	{GodanU, "ったり", ""},
	{GodanU, "いましたり", ""},
	{GodanU, "わなかったり", ""},
	{GodanU, "いませんでしたり", ""},
	{GodanU, "い", ""},

	{GodanUSpecial, "う", ""},
	{GodanUSpecial, "います", ""},
	{GodanUSpecial, "わない", ""},
	{GodanUSpecial, "いません", ""},
	{GodanUSpecial, "うた", ""},
	{GodanUSpecial, "いました", ""},
	{GodanUSpecial, "わなかった", ""},
	{GodanUSpecial, "いませんでした", ""},
	{GodanUSpecial, "うて", ""},
	{GodanUSpecial, "いまして", ""},
	{GodanUSpecial, "わなくて", ""},
	{GodanUSpecial, "わないで", ""},
	{GodanUSpecial, "いませんで", ""},
	{GodanUSpecial, "えば", ""},
	{GodanUSpecial, "わなければ", ""},
	{GodanUSpecial, "える", ""},
	{GodanUSpecial, "えます", ""},
	{GodanUSpecial, "えない", ""},
	{GodanUSpecial, "えません", ""},
	{GodanUSpecial, "われる", ""},
	{GodanUSpecial, "われます", ""},
	{GodanUSpecial, "われない", ""},
	{GodanUSpecial, "われません", ""},
	{GodanUSpecial, "わせる", ""},
	{GodanUSpecial, "わす", ""},
	{GodanUSpecial, "わせます", ""},
	{GodanUSpecial, "わします", ""},
	{GodanUSpecial, "わせない", ""},
	{GodanUSpecial, "わさない", ""},
	{GodanUSpecial, "わせません", ""},
	{GodanUSpecial, "わしません", ""},
	{GodanUSpecial, "わせられる", ""},
	{GodanUSpecial, "わされる", ""},
	{GodanUSpecial, "わせられます", ""},
	{GodanUSpecial, "わされます", ""},
	{GodanUSpecial, "わせられない", ""},
	{GodanUSpecial, "わされない", ""},
	{GodanUSpecial, "わせられません", ""},
	{GodanUSpecial, "わされません", ""},
	{GodanUSpecial, "おう", ""},
	{GodanUSpecial, "いましょう", ""},
	{GodanUSpecial, "うまい", ""},
	{GodanUSpecial, "いませんまい", ""},
	{GodanUSpecial, "え", ""},
	{GodanUSpecial, "いなさい", ""},
	{GodanUSpecial, "うな", ""},
	{GodanUSpecial, "いなさるな", ""},
	{GodanUSpecial, "うたら", ""},
	{GodanUSpecial, "いましたら", ""},
	{GodanUSpecial, "わなかったら", ""},
	{GodanUSpecial, "いませんでしたら", ""},
	{GodanUSpecial, "うたり", ""},
	{GodanUSpecial, "いましたり", ""},
	{GodanUSpecial, "わなかったり", ""},
	{GodanUSpecial, "いませんでしたり", ""},
	{GodanUSpecial, "い", ""},

	{Kuru, "る", ""},
	{Kuru, "ます", ""},
	{Kuru, "ない", ""},
	{Kuru, "ません", ""},
	{Kuru, "た", ""},
	{Kuru, "ました", ""},
	{Kuru, "なかった", ""},
	{Kuru, "ませんでした", ""},
	{Kuru, "て", ""},
	{Kuru, "まして", ""},
	{Kuru, "なくて", ""},
	{Kuru, "ないで", ""},
	{Kuru, "ませんで", ""},
	{Kuru, "れば", ""},
	{Kuru, "なければ", ""},
	{Kuru, "られる", ""},
	{Kuru, "れる", ""},
	{Kuru, "られます", ""},
	{Kuru, "れます", ""},
	{Kuru, "られない", ""},
	{Kuru, "れない", ""},
	{Kuru, "られません", ""},
	{Kuru, "れません", ""},
	{Kuru, "られる", ""},
	{Kuru, "られます", ""},
	{Kuru, "られない", ""},
	{Kuru, "られません", ""},
	{Kuru, "させる", ""},
	{Kuru, "さす", ""},
	{Kuru, "させます", ""},
	{Kuru, "さします", ""},
	{Kuru, "させない", ""},
	{Kuru, "ささない", ""},
	{Kuru, "させません", ""},
	{Kuru, "さしません", ""},
	{Kuru, "させられる", ""},
	{Kuru, "させられます", ""},
	{Kuru, "させられない", ""},
	{Kuru, "させられません", ""},
	{Kuru, "よう", ""},
	{Kuru, "ましょう", ""},
	{Kuru, "まい", ""},
	{Kuru, "ますまい", ""},
	{Kuru, "い", ""},
	{Kuru, "なさい", ""},
	{Kuru, "るな", ""},
	{Kuru, "なさるな", ""},
	{Kuru, "たら", ""},
	{Kuru, "ましたら", ""},
	{Kuru, "なかったら", ""},
	{Kuru, "ませんでしたら", ""},
	{Kuru, "たり", ""},
	{Kuru, "ましたり", ""},
	{Kuru, "なかったり", ""},
	{Kuru, "ませんでしたり", ""},

	{Suru, "する", ""},

	{SuruSpecial, "る", "す"},
	{SuruSpecial, "ます", "し"},
	{SuruSpecial, "ない", "さ"},
	{SuruSpecial, "ません", "し"},
	{SuruSpecial, "た", "し"},
	{SuruSpecial, "ました", "し"},
	{SuruSpecial, "なかった", "さ"},
	{SuruSpecial, "ませんでした", "し"},
	{SuruSpecial, "て", "し"},
	{SuruSpecial, "てた", "し"},
	{SuruSpecial, "まして", "し"},
	{SuruSpecial, "なくて", "さ"},
	{SuruSpecial, "ないで", "し"},
	{SuruSpecial, "ませんで", "し"},
	{SuruSpecial, "れば", "す"},
	{SuruSpecial, "ますなれば", "し"},
	{SuruSpecial, "なければ", "さ"},
	{SuruSpecial, "る", "え"},
	{SuruSpecial, "る", "う"},
	{SuruSpecial, "ます", "え"},
	{SuruSpecial, "ない", "え"},
	{SuruSpecial, "ません", "え"},
	{SuruSpecial, "れる", "さ"},
	{SuruSpecial, "れます", "さ"},
	{SuruSpecial, "れない", "さ"},
	{SuruSpecial, "れません", "さ"},
	{SuruSpecial, "せる", "さ"},
	{SuruSpecial, "す", "さ"},
	{SuruSpecial, "せます", "さ"},
	{SuruSpecial, "します", "さ"},
	{SuruSpecial, "せない", "さ"},
	{SuruSpecial, "さない", "さ"},
	{SuruSpecial, "せません", "さ"},
	{SuruSpecial, "しません", "さ"},
	{SuruSpecial, "せられる", "さ"},
	{SuruSpecial, "せられます", "さ"},
	{SuruSpecial, "せられない", "さ"},
	{SuruSpecial, "せられません", "さ"},
	{SuruSpecial, "よう", "し"},
	{SuruSpecial, "ましょう", "し"},
	{SuruSpecial, "るまい", "す"},
	{SuruSpecial, "ますまい", "し"},
	{SuruSpecial, "ろ", "し"},
	{SuruSpecial, "よ", "せ"},
	{SuruSpecial, "なさい", "し"},
	{SuruSpecial, "るな", "す"},
	{SuruSpecial, "なさるな", "し"},
	{SuruSpecial, "たら", "し"},
	{SuruSpecial, "ましたら", "し"},
	{SuruSpecial, "なかったら", "さ"},
	{SuruSpecial, "ませんでしたら", "し"},
	{SuruSpecial, "たり", "し"},
	{SuruSpecial, "ましたり", "し"},
	{SuruSpecial, "なかったり", "さ"},
	{SuruSpecial, "ませんでしたり", "し"},
	{SuruSpecial, "", "し"},

	{SuruIncluded, "る", "す"},
	{SuruIncluded, "ます", "し"},
	{SuruIncluded, "ない", "し"},
	{SuruIncluded, "ません", "し"},
	{SuruIncluded, "た", "し"},
	{SuruIncluded, "ました", "し"},
	{SuruIncluded, "なかった", "し"},
	{SuruIncluded, "ませんでした", "し"},
	{SuruIncluded, "て", "し"},
	{SuruIncluded, "てた", "し"},
	{SuruIncluded, "まして", "し"},
	{SuruIncluded, "なくて", "し"},
	{SuruIncluded, "ないで", "し"},
	{SuruIncluded, "ませんで", "し"},
	{SuruIncluded, "れば", "す"},
	{SuruIncluded, "ますなれば", "し"},
	{SuruIncluded, "なければ", "し"},
	{SuruIncluded, "る", "でき"},
	{SuruIncluded, "ます", "でき"},
	{SuruIncluded, "ない", "でき"},
	{SuruIncluded, "ません", "でき"},
	{SuruIncluded, "れる", "さ"},
	{SuruIncluded, "れます", "さ"},
	{SuruIncluded, "れない", "さ"},
	{SuruIncluded, "れません", "さ"},
	{SuruIncluded, "せる", "さ"},
	{SuruIncluded, "す", "さ"},
	{SuruIncluded, "せます", "さ"},
	{SuruIncluded, "します", "さ"},
	{SuruIncluded, "せない", "さ"},
	{SuruIncluded, "さない", "さ"},
	{SuruIncluded, "せません", "さ"},
	{SuruIncluded, "しません", "さ"},
	{SuruIncluded, "せられる", "さ"},
	{SuruIncluded, "せられます", "さ"},
	{SuruIncluded, "せられない", "さ"},
	{SuruIncluded, "せられません", "さ"},
	{SuruIncluded, "よう", "し"},
	{SuruIncluded, "ましょう", "し"},
	{SuruIncluded, "るまい", "す"},
	{SuruIncluded, "ますまい", "し"},
	{SuruIncluded, "ろ", "し"},
	{SuruIncluded, "よ", "せ"},
	{SuruIncluded, "なさい", "し"},
	{SuruIncluded, "るな", "す"},
	{SuruIncluded, "なさるな", "し"},
	{SuruIncluded, "たら", "し"},
	{SuruIncluded, "ましたら", "し"},
	{SuruIncluded, "なかったら", "し"},
	{SuruIncluded, "ませんでしたら", "し"},
	{SuruIncluded, "たり", "し"},
	{SuruIncluded, "ましたり", "し"},
	{SuruIncluded, "なかったり", "し"},
	{SuruIncluded, "ませんでしたり", "し"},
	{SuruIncluded, "", "し"},
}
