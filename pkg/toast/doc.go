// Package toast provides feedback notifications for the contact page.
//
// Toasts are custom events. The server emits them through an Emitter (the
// live session), they travel to the browser with the next update, and the
// thin client dispatches them as a DOM CustomEvent named "contact:toast":
//
//	window.addEventListener("contact:toast", (e) => {
//	    const { level, message, title } = e.detail;
//	    alert(message);
//	});
//
// Server-side:
//
//	toast.Success(emitter, "Форма успешно отправлена!")
package toast
